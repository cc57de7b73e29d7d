package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/OpenCampus/Campus_BContentstore/db"
	"github.com/OpenCampus/Campus_BContentstore/res"
)

// Elasticsearch index of course content
const CONTENT_INDEX = "course_content"

var searchService *SearchService

type SearchService struct{}

// Search runs a full-text query over the indexed content of the course.
func (s *SearchService) Search(idCourse, search string) (interface{}, *res.ErrorRes) {
	simpleQuery := fmt.Sprintf(
		`"bool": {"must": { "simple_query_string": { "query": "%s*", "analyzer": "standard" } },`,
		search,
	)
	simpleQuery += fmt.Sprintf(`"filter": { "term": { "id_course": "%s" } } }`, idCourse)

	query := db.ConstructQuery(simpleQuery)
	var mapRes map[string]interface{}

	es, err := db.NewConnectionEs()
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	response, err := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(CONTENT_INDEX),
		es.Search.WithBody(query),
		es.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(&mapRes); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return mapRes["hits"], nil
}

func NewSearchService() *SearchService {
	if searchService == nil {
		searchService = &SearchService{}
	}
	return searchService
}
