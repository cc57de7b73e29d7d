package services

import (
	"testing"

	"github.com/OpenCampus/Campus_BContentstore/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSectionsQuality(t *testing.T) {
	service := NewQualityService()
	course := &models.Course{HighlightsEnabled: true}
	sections := []models.Section{
		{Highlights: []string{"Semana 1"}},
		{VisibleToStaffOnly: true},
		{HideFromToc: true, Highlights: []string{"Oculta"}},
		{},
	}

	quality := service.sectionsQuality(course, sections)
	assert.Equal(t, 4, quality.TotalNumber)
	assert.Equal(t, 2, quality.TotalVisible)
	assert.Equal(t, 1, quality.NumberWithHighlights)
	assert.True(t, quality.HighlightsEnabled)
	assert.True(t, quality.HighlightsActive)
}

func TestSectionsQualityHighlightsInactiveForSelfPaced(t *testing.T) {
	service := NewQualityService()
	course := &models.Course{HighlightsEnabled: true, SelfPaced: true}

	quality := service.sectionsQuality(course, nil)
	assert.True(t, quality.HighlightsEnabled)
	assert.False(t, quality.HighlightsActive)
}

func TestSubsectionsQuality(t *testing.T) {
	service := NewQualityService()
	idOne := primitive.NewObjectID()
	idTwo := primitive.NewObjectID()
	subsections := []models.Subsection{
		{ID: idOne},
		{ID: idTwo},
		{VisibleToStaffOnly: true},
	}
	units := map[primitive.ObjectID][]models.Unit{
		idOne: {
			{Blocks: []models.Block{
				{Type: models.BLOCK_VIDEO},
				{Type: models.BLOCK_VIDEO},
			}},
		},
		idTwo: {
			{Blocks: []models.Block{
				{Type: models.BLOCK_VIDEO},
				{Type: models.BLOCK_PROBLEM},
			}},
			{Blocks: []models.Block{
				{Type: models.BLOCK_HTML},
			}},
		},
	}

	quality := service.subsectionsQuality(subsections, units)
	assert.Equal(t, 2, quality.TotalVisible)
	assert.Equal(t, 1, quality.NumWithOneBlockType)
	assert.Equal(t, 1.0, quality.NumBlockTypes.Min)
	assert.Equal(t, 3.0, quality.NumBlockTypes.Max)
	assert.Equal(t, 2.0, quality.NumBlockTypes.Mean)
}

func TestUnitsQuality(t *testing.T) {
	service := NewQualityService()
	units := []models.Unit{
		{Blocks: []models.Block{{Type: models.BLOCK_HTML}}},
		{Blocks: []models.Block{{Type: models.BLOCK_HTML}, {Type: models.BLOCK_VIDEO}}},
		{VisibleToStaffOnly: true, Blocks: []models.Block{{Type: models.BLOCK_HTML}}},
	}

	quality := service.unitsQuality(units)
	assert.Equal(t, 2, quality.TotalVisible)
	assert.Equal(t, 1.0, quality.NumBlocks.Min)
	assert.Equal(t, 2.0, quality.NumBlocks.Max)
	assert.Equal(t, 1.5, quality.NumBlocks.Mean)
}

func TestVideosQuality(t *testing.T) {
	service := NewQualityService()
	videos := []models.Video{
		{
			ValID:    "val-1",
			Duration: 60,
			Encodings: []models.Encoding{
				{Profile: models.PROFILE_MOBILE_LOW},
				{Profile: models.PROFILE_DESKTOP},
			},
		},
		{
			Duration: 120,
			Encodings: []models.Encoding{
				{Profile: models.PROFILE_DESKTOP},
			},
		},
		{ValID: "val-3", Duration: 60},
	}

	quality := service.videosQuality(videos)
	assert.Equal(t, 3, quality.TotalNumber)
	assert.Equal(t, 1, quality.NumMobileEncoded)
	assert.Equal(t, 2, quality.NumWithValID)
	assert.Equal(t, 60.0, quality.Durations.Min)
	assert.Equal(t, 120.0, quality.Durations.Max)
	assert.Equal(t, 80.0, quality.Durations.Mean)
	assert.Equal(t, 60.0, quality.Durations.Median)
	assert.Equal(t, 60.0, quality.Durations.Mode)
}
