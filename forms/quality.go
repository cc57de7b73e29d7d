package forms

// Query params of the quality endpoint. Explicit params win over "all".
type QualityQuery struct {
	All         bool  `form:"all"`
	Sections    *bool `form:"sections"`
	Subsections *bool `form:"subsections"`
	Units       *bool `form:"units"`
	Videos      *bool `form:"videos"`
}

func orDefault(param *bool, def bool) bool {
	if param != nil {
		return *param
	}
	return def
}

func (q *QualityQuery) WantsSections() bool {
	return orDefault(q.Sections, q.All)
}

func (q *QualityQuery) WantsSubsections() bool {
	return orDefault(q.Subsections, q.All)
}

func (q *QualityQuery) WantsUnits() bool {
	return orDefault(q.Units, q.All)
}

func (q *QualityQuery) WantsVideos() bool {
	return orDefault(q.Videos, q.All)
}
