package services

import (
	"net/http"
	"sync"

	"github.com/OpenCampus/Campus_BContentstore/db"
	"github.com/OpenCampus/Campus_BContentstore/forms"
	"github.com/OpenCampus/Campus_BContentstore/funct"
	"github.com/OpenCampus/Campus_BContentstore/models"
	"github.com/OpenCampus/Campus_BContentstore/res"
	"github.com/OpenCampus/Campus_BContentstore/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var qualityService *QualityService

type QualityService struct{}

type SectionsQuality struct {
	TotalNumber          int  `json:"total_number"`
	TotalVisible         int  `json:"total_visible"`
	NumberWithHighlights int  `json:"number_with_highlights"`
	HighlightsEnabled    bool `json:"highlights_enabled"`
	HighlightsActive     bool `json:"highlights_active_for_course"`
}

type SubsectionsQuality struct {
	TotalVisible        int         `json:"total_visible"`
	NumWithOneBlockType int         `json:"num_with_one_block_type"`
	NumBlockTypes       utils.Stats `json:"num_block_types"`
}

type UnitsQuality struct {
	TotalVisible int         `json:"total_visible"`
	NumBlocks    utils.Stats `json:"num_blocks"`
}

type VideosQuality struct {
	TotalNumber      int         `json:"total_number"`
	NumMobileEncoded int         `json:"num_mobile_encoded"`
	NumWithValID     int         `json:"num_with_val_id"`
	Durations        utils.Stats `json:"durations"`
}

func (q *QualityService) sectionsQuality(
	course *models.Course,
	sections []models.Section,
) SectionsQuality {
	visibleSections := funct.Filter(sections, func(section models.Section) bool {
		return section.Visible()
	})
	withHighlights := funct.Count(visibleSections, func(section models.Section) bool {
		return len(section.Highlights) > 0
	})
	return SectionsQuality{
		TotalNumber:          len(sections),
		TotalVisible:         len(visibleSections),
		NumberWithHighlights: withHighlights,
		HighlightsEnabled:    course.HighlightsEnabled,
		HighlightsActive:     course.HighlightsEnabled && !course.SelfPaced,
	}
}

func (q *QualityService) subsectionsQuality(
	subsections []models.Subsection,
	unitsBySubsection map[primitive.ObjectID][]models.Unit,
) SubsectionsQuality {
	visibleSubsections := funct.Filter(subsections, func(subsection models.Subsection) bool {
		return subsection.Visible()
	})

	var blockTypeCounts []int
	numWithOne := 0
	for _, subsection := range visibleSubsections {
		seen := make(map[string]bool)
		for _, unit := range unitsBySubsection[subsection.ID] {
			for _, blockType := range unit.BlockTypes() {
				seen[blockType] = true
			}
		}
		blockTypeCounts = append(blockTypeCounts, len(seen))
		if len(seen) == 1 {
			numWithOne++
		}
	}
	return SubsectionsQuality{
		TotalVisible:        len(visibleSubsections),
		NumWithOneBlockType: numWithOne,
		NumBlockTypes:       utils.GetStats(utils.IntsToFloats(blockTypeCounts)),
	}
}

func (q *QualityService) unitsQuality(units []models.Unit) UnitsQuality {
	visibleUnits := funct.Filter(units, func(unit models.Unit) bool {
		return unit.Visible()
	})
	blockCounts := make([]int, len(visibleUnits))
	for i, unit := range visibleUnits {
		blockCounts[i] = len(unit.Blocks)
	}
	return UnitsQuality{
		TotalVisible: len(visibleUnits),
		NumBlocks:    utils.GetStats(utils.IntsToFloats(blockCounts)),
	}
}

func (q *QualityService) videosQuality(videos []models.Video) VideosQuality {
	durations := make([]float64, len(videos))
	for i, video := range videos {
		durations[i] = video.Duration
	}
	mobileEncoded := funct.Count(videos, func(video models.Video) bool {
		return video.MobileEncoded()
	})
	withValID := funct.Count(videos, func(video models.Video) bool {
		return video.ValID != ""
	})
	return VideosQuality{
		TotalNumber:      len(videos),
		NumMobileEncoded: mobileEncoded,
		NumWithValID:     withValID,
		Durations:        utils.GetStats(durations),
	}
}

func (q *QualityService) getSections(idObjCourse primitive.ObjectID) ([]models.Section, error) {
	var sections []models.Section
	cursor, err := sectionModel.GetAll(bson.D{{
		Key:   "course",
		Value: idObjCourse,
	}}, &options.FindOptions{})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(db.Ctx, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (q *QualityService) getSubsections(idObjCourse primitive.ObjectID) ([]models.Subsection, error) {
	var subsections []models.Subsection
	cursor, err := subsectionModel.GetAll(bson.D{{
		Key:   "course",
		Value: idObjCourse,
	}}, &options.FindOptions{})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(db.Ctx, &subsections); err != nil {
		return nil, err
	}
	return subsections, nil
}

func (q *QualityService) getUnits(idObjCourse primitive.ObjectID) ([]models.Unit, error) {
	var units []models.Unit
	cursor, err := unitModel.GetAll(bson.D{{
		Key:   "course",
		Value: idObjCourse,
	}}, &options.FindOptions{})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(db.Ctx, &units); err != nil {
		return nil, err
	}
	return units, nil
}

func (q *QualityService) getVideos(idObjCourse primitive.ObjectID) ([]models.Video, error) {
	var videos []models.Video
	cursor, err := videoModel.GetAll(bson.D{{
		Key:   "course",
		Value: idObjCourse,
	}}, &options.FindOptions{})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(db.Ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// GetCourseQuality assembles the requested aggregates over the course tree.
// The aggregates are independent, so they load concurrently.
func (q *QualityService) GetCourseQuality(
	idCourse string,
	query *forms.QualityQuery,
) (map[string]interface{}, *res.ErrorRes) {
	course, errRes := GetCourseFromID(idCourse)
	if errRes != nil {
		return nil, errRes
	}
	idObjCourse := course.ID

	var lock sync.Mutex
	response := make(map[string]interface{})
	response["is_self_paced"] = course.SelfPaced

	var parts []func() *res.ErrorRes
	if query.WantsSections() {
		parts = append(parts, func() *res.ErrorRes {
			sections, err := q.getSections(idObjCourse)
			if err != nil {
				return &res.ErrorRes{
					Err:        err,
					StatusCode: http.StatusServiceUnavailable,
				}
			}
			lock.Lock()
			response["sections"] = q.sectionsQuality(course, sections)
			lock.Unlock()
			return nil
		})
	}
	if query.WantsSubsections() {
		parts = append(parts, func() *res.ErrorRes {
			subsections, err := q.getSubsections(idObjCourse)
			if err != nil {
				return &res.ErrorRes{
					Err:        err,
					StatusCode: http.StatusServiceUnavailable,
				}
			}
			units, err := q.getUnits(idObjCourse)
			if err != nil {
				return &res.ErrorRes{
					Err:        err,
					StatusCode: http.StatusServiceUnavailable,
				}
			}
			unitsBySubsection := make(map[primitive.ObjectID][]models.Unit)
			for _, unit := range units {
				unitsBySubsection[unit.Subsection] = append(unitsBySubsection[unit.Subsection], unit)
			}
			lock.Lock()
			response["subsections"] = q.subsectionsQuality(subsections, unitsBySubsection)
			lock.Unlock()
			return nil
		})
	}
	if query.WantsUnits() {
		parts = append(parts, func() *res.ErrorRes {
			units, err := q.getUnits(idObjCourse)
			if err != nil {
				return &res.ErrorRes{
					Err:        err,
					StatusCode: http.StatusServiceUnavailable,
				}
			}
			lock.Lock()
			response["units"] = q.unitsQuality(units)
			lock.Unlock()
			return nil
		})
	}
	if query.WantsVideos() {
		parts = append(parts, func() *res.ErrorRes {
			videos, err := q.getVideos(idObjCourse)
			if err != nil {
				return &res.ErrorRes{
					Err:        err,
					StatusCode: http.StatusServiceUnavailable,
				}
			}
			lock.Lock()
			response["videos"] = q.videosQuality(videos)
			lock.Unlock()
			return nil
		})
	}

	if len(parts) > 0 {
		errRes := utils.Concurrency(4, len(parts), func(index int, setError func(errRes *res.ErrorRes)) {
			if err := parts[index](); err != nil {
				setError(err)
			}
		})
		if errRes != nil {
			return nil, errRes
		}
	}
	return response, nil
}

func NewQualityService() *QualityService {
	if qualityService == nil {
		qualityService = &QualityService{}
	}
	return qualityService
}
