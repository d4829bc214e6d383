// Package weekimage рисует расписание недели в PNG
package weekimage

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image/color"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
)

// FontStyle стиль шрифта
type FontStyle int

const (
	FontStyleRegular FontStyle = iota
	FontStyleBold
)

const (
	imageWidth        = 1400
	imageHeight       = 900
	headerHeight      = 110
	leftLabelsWidth   = 80
	legendWidth       = 160
	dayPaddingX       = 6
	minEntryHeight    = 12.0
	entryBorderRadius = 6.0
	shadowOffset      = 3.0
	hourPaddingTop    = 1
	hourPaddingBot    = 1
	defaultMinHour    = 8
	defaultMaxHour    = 18
)

const (
	titleFontSize      = 26.0
	dayFontSize        = 22.0
	hourLabelFontSize  = 16.0
	entryTimeFontSize  = 14.0
	entryTextFontSize  = 13.0
	legendItemFontSize = 13.0
)

var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	textColor        = color.RGBA{80, 85, 90, 220}
	hourLabelColor   = color.RGBA{110, 115, 120, 200}
	hourLineColor    = color.NRGBA{150, 150, 150, 255}
	todayBgColor     = color.NRGBA{255, 99, 71, 90}
	evenDayColor     = color.NRGBA{240, 240, 240, 255}
	oddDayColor      = color.NRGBA{225, 225, 225, 255}
	currentTimeColor = color.NRGBA{255, 80, 80, 200}

	entryTextColor   = color.RGBA{20, 24, 28, 230}
	entryShadowColor = color.RGBA{0, 0, 0, 20}
	legendItemColor  = color.RGBA{70, 74, 78, 220}

	// палитра для типов занятий
	palette = []color.RGBA{
		{133, 193, 85, 220},
		{120, 170, 230, 220},
		{255, 190, 110, 220},
		{200, 150, 220, 220},
		{240, 140, 140, 220},
		{150, 210, 200, 220},
	}
)

type hourRange struct {
	start int
	end   int
	total int
}

var (
	fontsOnce   sync.Once
	parsedFonts map[FontStyle]*opentype.Font
)

func parseFonts() {
	parsedFonts = make(map[FontStyle]*opentype.Font)
	for style, data := range map[FontStyle][]byte{
		FontStyleRegular: goregular.TTF,
		FontStyleBold:    gobold.TTF,
	} {
		if f, err := opentype.Parse(data); err == nil {
			parsedFonts[style] = f
		}
	}
}

// loadFont устанавливает шрифт нужного стиля, при ошибке используется basicfont
func loadFont(dc *gg.Context, size float64, style FontStyle) {
	fontsOnce.Do(parseFonts)

	if f, ok := parsedFonts[style]; ok {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			dc.SetFontFace(face)
			return
		}
	}
	dc.SetFontFace(basicfont.Face7x13)
}

// Render рисует расписание недели. now используется для подсветки текущего дня и времени
func Render(title string, week []service.DayTimetable, now time.Time) ([]byte, error) {
	if len(week) == 0 {
		return nil, fmt.Errorf("render week image: no days")
	}

	hours := calculateHourRange(week)
	types := subjectTypes(week)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := (imageWidth - leftLabelsWidth - legendWidth) / len(week)
	dayHeight := imageHeight - headerHeight
	cellHeight := float64(dayHeight) / float64(hours.total)

	drawHeader(dc, title, week)
	drawHourLabels(dc, hours, cellHeight)

	todayIndex := -1
	for i, day := range week {
		x := float64(leftLabelsWidth + i*dayWidth)
		y := float64(headerHeight)

		isToday := isSameDay(day.Date, now)
		if isToday {
			todayIndex = i
		}

		drawDayBackground(dc, x, y, dayWidth, dayHeight, i, isToday)
		drawDayHeader(dc, day.Date, x, y, dayWidth)
		drawHourLines(dc, x, y, dayWidth, hours, cellHeight)
		for _, entry := range day.Entries {
			drawEntry(dc, entry, types[entry.SubjectType], x, y, dayWidth, hours, cellHeight)
		}
	}

	if todayIndex >= 0 {
		drawCurrentTimeLine(dc, now, hours, cellHeight, float64(leftLabelsWidth+todayIndex*dayWidth), dayWidth)
	}
	drawLegend(dc, types, float64(leftLabelsWidth+len(week)*dayWidth+10))

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode week image: %w", err)
	}
	return buf.Bytes(), nil
}

// calculateHourRange определяет диапазон часов для отображения
func calculateHourRange(week []service.DayTimetable) hourRange {
	minHour, maxHour := 24, 0

	for _, day := range week {
		for _, entry := range day.Entries {
			endH := entry.EndsAt.Hour()
			if entry.EndsAt.Minute() > 0 {
				endH++
			}
			minHour = min(minHour, entry.StartsAt.Hour())
			maxHour = max(maxHour, endH)
		}
	}

	if minHour == 24 {
		minHour, maxHour = defaultMinHour, defaultMaxHour
	}

	start := max(minHour-hourPaddingTop, 0)
	end := min(maxHour+hourPaddingBot, 24)

	return hourRange{start: start, end: end, total: end - start}
}

// subjectTypes назначает каждому типу занятия цвет из палитры
func subjectTypes(week []service.DayTimetable) map[string]color.RGBA {
	types := make(map[string]color.RGBA)
	for _, day := range week {
		for _, entry := range day.Entries {
			if _, ok := types[entry.SubjectType]; !ok {
				types[entry.SubjectType] = colorFor(entry.SubjectType)
			}
		}
	}
	return types
}

func colorFor(subjectType string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(subjectType))
	return palette[h.Sum32()%uint32(len(palette))]
}

func drawHeader(dc *gg.Context, title string, week []service.DayTimetable) {
	first, last := week[0].Date, week[len(week)-1].Date
	period := fmt.Sprintf("%s – %s", first.Format("02.01.2006"), last.Format("02.01.2006"))

	loadFont(dc, titleFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, 20, 30, 0, 0.5)

	loadFont(dc, hourLabelFontSize, FontStyleRegular)
	dc.DrawStringAnchored(period, 20, 60, 0, 0.5)
}

func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	loadFont(dc, hourLabelFontSize, FontStyleRegular)
	dc.SetColor(hourLabelColor)

	for i := 0; i <= hours.total; i++ {
		y := float64(headerHeight) + float64(i)*cellHeight
		label := model.NewTimeOfDay(hours.start+i, 0).String()
		dc.DrawStringAnchored(label, float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

func isSameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func drawDayBackground(dc *gg.Context, x, y float64, dayWidth, dayHeight, dayIndex int, isToday bool) {
	switch {
	case isToday:
		dc.SetColor(todayBgColor)
	case dayIndex%2 == 0:
		dc.SetColor(evenDayColor)
	default:
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, y, float64(dayWidth), float64(dayHeight))
	dc.Fill()
}

func drawDayHeader(dc *gg.Context, date time.Time, x, y float64, dayWidth int) {
	loadFont(dc, dayFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(date.Format("02.01"), x+float64(dayWidth)/2, y, 0.5, -1)
	dc.DrawStringAnchored(weekdayShort(date.Weekday()), x+float64(dayWidth)/2, y, 0.5, -0.2)
}

func drawHourLines(dc *gg.Context, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)

	for i := 0; i <= hours.total; i++ {
		hy := y + float64(i)*cellHeight
		dc.DrawLine(x, hy, x+float64(dayWidth), hy)
		dc.Stroke()
	}
}

// drawEntry рисует одно занятие
func drawEntry(dc *gg.Context, entry model.TimetableEntry, fill color.RGBA, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	startHour := float64(entry.StartsAt.Hour()) + float64(entry.StartsAt.Minute())/60
	endHour := float64(entry.EndsAt.Hour()) + float64(entry.EndsAt.Minute())/60

	entryY := y + (startHour-float64(hours.start))*cellHeight
	entryHeight := max((endHour-startHour)*cellHeight, minEntryHeight)
	entryWidth := float64(dayWidth) - float64(dayPaddingX*2)

	dc.SetColor(entryShadowColor)
	dc.DrawRoundedRectangle(x+dayPaddingX+shadowOffset, entryY+2+shadowOffset, entryWidth, entryHeight-4, entryBorderRadius)
	dc.Fill()

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x+dayPaddingX, entryY+2, entryWidth, entryHeight-4, entryBorderRadius)
	dc.Fill()

	dc.SetColor(darkenColor(fill, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x+dayPaddingX, entryY+2, entryWidth, entryHeight-4, entryBorderRadius)
	dc.Stroke()

	txtX := x + dayPaddingX + 6
	txtY := entryY + 18

	loadFont(dc, entryTimeFontSize, FontStyleBold)
	dc.SetColor(entryTextColor)
	dc.DrawStringAnchored(fmt.Sprintf("%s %s", entry.StartsAt, entry.Auditorium), txtX, txtY, 0, 0)

	if entryHeight > 36 {
		loadFont(dc, entryTextFontSize, FontStyleRegular)
		dc.DrawStringAnchored(truncate(entry.SubjectName, 22), txtX, txtY+16, 0, 0)
	}
}

// truncate обрезает строку по рунам
func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes-1]) + "…"
}

func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// drawCurrentTimeLine рисует линию текущего времени в колонке сегодняшнего дня
func drawCurrentTimeLine(dc *gg.Context, now time.Time, hours hourRange, cellHeight, x float64, dayWidth int) {
	current := float64(now.Hour()) + float64(now.Minute())/60
	if current < float64(hours.start) || current > float64(hours.end) {
		return
	}

	lineY := float64(headerHeight) + (current-float64(hours.start))*cellHeight
	dc.SetColor(currentTimeColor)
	dc.SetLineWidth(2)
	dc.DrawLine(x, lineY, x+float64(dayWidth), lineY)
	dc.Stroke()
}

func drawLegend(dc *gg.Context, types map[string]color.RGBA, legendX float64) {
	const boxW, boxH = 20.0, 14.0
	liY := float64(headerHeight) + 10

	for _, name := range slices.Sorted(maps.Keys(types)) {
		dc.SetColor(types[name])
		dc.DrawRoundedRectangle(legendX, liY, boxW, boxH, 3)
		dc.Fill()

		loadFont(dc, legendItemFontSize, FontStyleRegular)
		dc.SetColor(legendItemColor)
		dc.DrawStringAnchored(truncate(name, 14), legendX+boxW+8, liY+boxH/2+1, 0, 0.2)
		liY += boxH + 14
	}
}

func weekdayShort(weekday time.Weekday) string {
	return [...]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}[weekday]
}
