package services

import (
	"fmt"
	"io"

	"github.com/OpenCampus/Campus_BContentstore/forms"
	"github.com/OpenCampus/Campus_BContentstore/res"
	"github.com/OpenCampus/Campus_BContentstore/utils"
	"github.com/xuri/excelize/v2"
)

func statsRow(name string, stats utils.Stats) []interface{} {
	return []interface{}{name, stats.Min, stats.Max, stats.Mean, stats.Median, stats.Mode}
}

// ExportQuality writes the full quality report as a xlsx workbook.
func (q *QualityService) ExportQuality(idCourse string, w io.Writer) (*excelize.File, *res.ErrorRes) {
	quality, errRes := q.GetCourseQuality(idCourse, &forms.QualityQuery{
		All: true,
	})
	if errRes != nil {
		return nil, errRes
	}
	sections := quality["sections"].(SectionsQuality)
	subsections := quality["subsections"].(SubsectionsQuality)
	units := quality["units"].(UnitsQuality)
	videos := quality["videos"].(VideosQuality)

	file := excelize.NewFile()
	sheetName := "Calidad"
	file.SetSheetName("Sheet1", sheetName)

	rows := [][]interface{}{
		{"Métrica", "Valor"},
		{"Curso al propio ritmo", quality["is_self_paced"]},
		{"Secciones", sections.TotalNumber},
		{"Secciones visibles", sections.TotalVisible},
		{"Secciones con destacados", sections.NumberWithHighlights},
		{"Subsecciones visibles", subsections.TotalVisible},
		{"Subsecciones con un solo tipo de bloque", subsections.NumWithOneBlockType},
		{"Unidades visibles", units.TotalVisible},
		{"Videos", videos.TotalNumber},
		{"Videos con codificación móvil", videos.NumMobileEncoded},
		{"Videos con id. de validación", videos.NumWithValID},
		{},
		{"Distribución", "Min", "Max", "Media", "Mediana", "Moda"},
		statsRow("Tipos de bloque por subsección", subsections.NumBlockTypes),
		statsRow("Bloques por unidad", units.NumBlocks),
		statsRow("Duración de videos (s)", videos.Durations),
	}
	for i, row := range rows {
		for j, value := range row {
			column := fmt.Sprintf("%v%v", string(rune('A'+j)), i+1)
			file.SetCellValue(sheetName, column, value)
		}
	}

	if err := file.Write(w); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: 500,
		}
	}
	return file, nil
}
