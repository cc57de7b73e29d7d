package main

import "github.com/OpenCampus/Campus_BContentstore/api/server"

// @title          Contentstore API
// @version        1.0
// @description    API Server Contentstore service
// @termsOfService http://swagger.io/terms/

// @contact.name  API Support
// @contact.url   http://www.swagger.io/support
// @contact.email support@swagger.io

// lincense.name  Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @tag.name        contentstore
// @tag.description Service of contentstore

// @host     localhost:8080
// @BasePath /api/c/contentstore

// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
// @description                BearerJWTToken in Authorization Header

// @accept  json
// @produce json
// @product octet-stream
// @product application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @product application/zip

// @schemes http https
func main() {
	server.Init()
}
