package services

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/OpenCampus/Campus_BContentstore/db"
	"github.com/OpenCampus/Campus_BContentstore/forms"
	"github.com/OpenCampus/Campus_BContentstore/models"
	"github.com/OpenCampus/Campus_BContentstore/res"
	"github.com/klauspost/compress/zip"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ASSET_URL_EXPIRE = time.Minute * 15

var assetsService *AssetsService

type AssetsService struct{}

type AssetWithURL struct {
	models.Asset
	URL string `json:"url"`
}

func (a *AssetsService) assetsFilter(
	idObjCourse primitive.ObjectID,
	query *forms.AssetsQuery,
) bson.D {
	filter := bson.D{{
		Key:   "course",
		Value: idObjCourse,
	}}
	if query.AssetType != "" {
		filter = append(filter, bson.E{
			Key: "content_type",
			Value: bson.M{
				"$regex": query.AssetType,
			},
		})
	}
	if query.TextSearch != "" {
		filter = append(filter, bson.E{
			Key: "display_name",
			Value: bson.M{
				"$regex":   query.TextSearch,
				"$options": "i",
			},
		})
	}
	return filter
}

// GetCourseAssets returns one page of course assets with download links.
func (a *AssetsService) GetCourseAssets(
	idCourse string,
	query *forms.AssetsQuery,
) (map[string]interface{}, *res.ErrorRes) {
	course, errRes := GetCourseFromID(idCourse)
	if errRes != nil {
		return nil, errRes
	}
	filter := a.assetsFilter(course.ID, query)

	direction := -1
	if query.Direction == "ascending" {
		direction = 1
	}
	findOptions := options.Find().
		SetSort(bson.D{{
			Key:   query.Sort,
			Value: direction,
		}}).
		SetSkip(int64(query.Page * query.PageSize)).
		SetLimit(int64(query.PageSize))

	var assets []models.Asset
	cursor, err := assetModel.GetAll(filter, findOptions)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &assets); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	totalCount, err := assetModel.Use().CountDocuments(db.Ctx, filter)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}

	assetsWithURL := make([]AssetWithURL, len(assets))
	for i, asset := range assets {
		url, err := aws.PresignedURL(asset.Key, ASSET_URL_EXPIRE)
		if err != nil {
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusServiceUnavailable,
			}
		}
		assetsWithURL[i] = AssetWithURL{
			Asset: asset,
			URL:   url,
		}
	}

	response := make(map[string]interface{})
	response["assets"] = assetsWithURL
	response["total_count"] = totalCount
	response["page"] = query.Page
	response["page_size"] = query.PageSize
	response["start"] = query.Page * query.PageSize
	return response, nil
}

// DownloadCourseAssets streams every asset of the course as a zip archive.
func (a *AssetsService) DownloadCourseAssets(idCourse string, w io.Writer) *res.ErrorRes {
	course, errRes := GetCourseFromID(idCourse)
	if errRes != nil {
		return errRes
	}

	var assets []models.Asset
	cursor, err := assetModel.GetAll(bson.D{{
		Key:   "course",
		Value: course.ID,
	}}, &options.FindOptions{})
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &assets); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if len(assets) == 0 {
		return &res.ErrorRes{
			Err:        fmt.Errorf("el curso no tiene archivos"),
			StatusCode: http.StatusNotFound,
		}
	}

	zipWriter := zip.NewWriter(w)
	defer zipWriter.Close()
	for _, asset := range assets {
		file, err := aws.GetFile(asset.Key)
		if err != nil {
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusServiceUnavailable,
			}
		}
		zipFile, err := zipWriter.Create(asset.DisplayName)
		if err != nil {
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		if _, err := zipFile.Write(file); err != nil {
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
	}
	return nil
}

func NewAssetsService() *AssetsService {
	if assetsService == nil {
		assetsService = &AssetsService{}
	}
	return assetsService
}
