package forms

type AssetsQuery struct {
	Page       int    `form:"page" binding:"omitempty,min=0"`
	PageSize   int    `form:"page_size,default=50" binding:"omitempty,min=1,max=500"`
	Sort       string `form:"sort,default=date_added" binding:"omitempty,oneof=date_added display_name"`
	Direction  string `form:"direction,default=descending" binding:"omitempty,oneof=ascending descending"`
	AssetType  string `form:"asset_type"`
	TextSearch string `form:"text_search"`
}

type SearchQuery struct {
	Search string `form:"search" binding:"required,min=1,max=100"`
}
