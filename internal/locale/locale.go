// Package locale holds the console message catalog.
//
// Messages are keyed by their English text. Russian translations follow the
// wording of the original classroom programs. Export file content is never
// localized; only console output goes through a Printer.
package locale

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/roach88/clampvec/internal/vector"
)

// Message keys. Numbers are passed as preformatted strings so the printer
// does not apply locale digit grouping or minus signs.
const (
	MsgArray         = "Array [size: %s]: %s"
	MsgEnterSize     = "Enter the size of the %s array: "
	MsgEnterElements = "Enter %s elements of the %s array (from %s to %s):"
	MsgFirst         = "first"
	MsgSecond        = "second"
	MsgFirstArray    = "First array: "
	MsgSecondArray   = "Second array: "
	MsgSum           = "Sum: "
	MsgDifference    = "Difference: "
	MsgSaving        = "Saving arrays to files..."
	MsgSaved         = "Array saved to file: %s"
	MsgAskAppend     = "Append a value to the end of the first array? (y/n): "
	MsgEnterAppend   = "Enter a value to append (from %s to %s): "
	MsgAfterAppend   = "Array after append: "
	MsgStatsMin      = "Min: %s"
	MsgStatsMax      = "Max: %s"
	MsgStatsMean     = "Mean: %s"
	MsgStatsMedian   = "Median: %s"
	MsgStatsFirst    = "--- First array statistics ---"
	MsgStatsSecond   = "--- Second array statistics ---"
	MsgStatsUpdated  = "Updated statistics:"
	MsgStatsEmpty    = "No statistics for an empty array."
	MsgJournalEmpty  = "No exports recorded."
	MsgJournalEntry  = "#%s %s %s (%s elements) %s"
)

var russian = map[string]string{
	MsgArray:         "Массив [размер: %s]: %s",
	MsgEnterSize:     "Введите размер %s массива: ",
	MsgEnterElements: "Введите %s элементов %s массива (от %s до %s):",
	MsgFirst:         "первого",
	MsgSecond:        "второго",
	MsgFirstArray:    "Первый массив: ",
	MsgSecondArray:   "Второй массив: ",
	MsgSum:           "Результат сложения: ",
	MsgDifference:    "Результат вычитания: ",
	MsgSaving:        "Сохранение массивов в файлы...",
	MsgSaved:         "Массив сохранен в файл: %s",
	MsgAskAppend:     "Хотите добавить элементы в конец первого массива? (y/n): ",
	MsgEnterAppend:   "Введите значение для добавления (от %s до %s): ",
	MsgAfterAppend:   "Массив после добавления: ",
	MsgStatsMin:      "Минимум: %s",
	MsgStatsMax:      "Максимум: %s",
	MsgStatsMean:     "Среднее: %s",
	MsgStatsMedian:   "Медиана: %s",
	MsgStatsFirst:    "--- Статистика первого массива ---",
	MsgStatsSecond:   "--- Статистика второго массива ---",
	MsgStatsUpdated:  "Обновленная статистика:",
	MsgStatsEmpty:    "Нет статистики для пустого массива.",
	MsgJournalEmpty:  "Экспортов не записано.",
	MsgJournalEntry:  "#%s %s %s (элементов: %s) %s",
}

// Supported lists the languages with a catalog, default first.
var Supported = []language.Tag{language.English, language.Russian}

var (
	matcher = language.NewMatcher(Supported)
	cat     = mustBuildCatalog()
)

func mustBuildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range russian {
		if err := b.SetString(language.Russian, key, msg); err != nil {
			panic(fmt.Sprintf("locale: register %q: %v", key, err))
		}
	}
	return b
}

// Match returns the supported tag closest to lang. Unknown or malformed tags
// match English.
func Match(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return Supported[idx]
}

// NewPrinter returns a printer for the best match of lang.
func NewPrinter(lang string) *message.Printer {
	return message.NewPrinter(Match(lang), message.Catalog(cat))
}

// RenderVector formats v as "Array [size: 3]: 1, 2, 3" in p's language.
func RenderVector(p *message.Printer, v *vector.Vector) string {
	return p.Sprintf(MsgArray, strconv.Itoa(v.Len()), v.Join(", "))
}

// FormatFloat renders a statistic without trailing zeros ("2.5", "5").
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
