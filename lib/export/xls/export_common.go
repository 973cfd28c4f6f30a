package xlsexport

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	fontFamily  = "Times New Roman"
	columnWidth = 25
	decimalFmt  = "0.0"
)

// sheetWriter стили создаются один раз на книгу и переиспользуются всеми листами
type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	textStyle   int
	numberStyle int
}

func newSheetWriter(f *excelize.File) (*sheetWriter, error) {
	font := &excelize.Font{Family: fontFamily, Size: 11}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Family: fontFamily, Size: 11, Bold: true},
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания стиля заголовка")
	}
	textStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Font:      font,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания стиля ячеек")
	}
	numFmt := decimalFmt
	numberStyle, err := f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Font:         font,
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания стиля чисел")
	}
	return &sheetWriter{f: f, headerStyle: headerStyle, textStyle: textStyle, numberStyle: numberStyle}, nil
}

func (w *sheetWriter) writeCell(sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err = w.f.SetCellValue(sheet, cell, value); err != nil {
		return err
	}
	style := w.textStyle
	if _, ok := value.(float64); ok {
		style = w.numberStyle
	}
	return w.f.SetCellStyle(sheet, cell, cell, style)
}

func (w *sheetWriter) writeHeader(sheet string, row int, headers []string) error {
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err = w.f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
		return err
	}
	for idx, value := range headers {
		cell, err := excelize.CoordinatesToCellName(idx+1, row)
		if err != nil {
			return err
		}
		if err = w.f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	return w.f.SetCellStyle(sheet, first, last, w.headerStyle)
}

// writeTable заголовок в первой строке, данные со второй
func (w *sheetWriter) writeTable(t table) error {
	if err := w.writeHeader(t.sheet, 1, t.headers); err != nil {
		return err
	}
	for idx, values := range t.rows {
		for col, value := range values {
			if err := w.writeCell(t.sheet, col+1, idx+2, value); err != nil {
				return err
			}
		}
	}
	return nil
}
