package render

import (
	"testing"
	"time"

	"fjacquet/budget-form/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func lunch() models.Record {
	return models.Record{
		Date:        time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC),
		FromAccount: "cash",
		ToAccount:   "[[expenses]]",
		Amount:      decimal.RequireFromString("12.5"),
		Tag:         "[[food]]",
		Details:     "Lunch ",
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		tpl      string
		fields   map[string]string
		expected string
	}{
		{"simple", "{a}", map[string]string{"a": "x"}, "x"},
		{"repeated token", "{a}-{a}", map[string]string{"a": "x"}, "x-x"},
		{"unknown token verbatim", "{a} {b}", map[string]string{"a": "x"}, "x {b}"},
		{"no fields", "{a}/{b}", nil, "{a}/{b}"},
		{"no re-scan of values", "{a}", map[string]string{"a": "{b}", "b": "y"}, "{b}"},
		{"literal text kept", "a {a} b", map[string]string{"a": "$1"}, "a $1 b"},
		{"unclosed brace", "x {a", map[string]string{"a": "y"}, "x {a"},
		{"empty template", "", map[string]string{"a": "y"}, ""},
		{"empty value", "[{a}]", map[string]string{"a": ""}, "[]"},
		{"doubled braces", "{{year}}", map[string]string{"year": "2023"}, "{2023}"},
		{"stray open brace before token", "a { b {amount} c", map[string]string{"amount": "12.5"}, "a { b 12.5 c"},
		{"stray close brace", "{amount} } {year}", map[string]string{"amount": "12.5", "year": "2023"}, "12.5 } 2023"},
		{"code block", "```js\nif (x) { y({amount}) }\n```", map[string]string{"amount": "12.5"}, "```js\nif (x) { y(12.5) }\n```"},
		{"json frontmatter", "{\"tag\": \"{tag}\"}", map[string]string{"tag": "food"}, "{\"tag\": \"food\"}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.tpl, tt.fields))
		})
	}
}

func TestPathFields(t *testing.T) {
	fields := PathFields(lunch())

	assert.Equal(t, map[string]string{
		"year":    "2023",
		"month":   "07",
		"day":     "03",
		"details": "lunch",
	}, fields)
}

func TestPathFields_UsesRecordLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	rec := lunch()
	rec.Date = time.Date(2024, 1, 1, 1, 0, 0, 0, loc)

	fields := PathFields(rec)
	assert.Equal(t, "2024", fields["year"])
	assert.Equal(t, "01", fields["month"])
	assert.Equal(t, "01", fields["day"])
}

func TestPath(t *testing.T) {
	assert.Equal(t, "2023/07/03-lunch", Path("{year}/{month}/{day}-{details}", lunch()))
	assert.Equal(t, "finance/budget/2023/07/03-07-2023-lunch",
		Path(models.DefaultCreatedFilePathTemplate, lunch()))
	assert.Equal(t, "2023/{amount}", Path("{year}/{amount}", lunch()))
}

func TestContent(t *testing.T) {
	assert.Equal(t, "12.5 Lunch ", Content("{amount} {details}", lunch()))

	tpl := "date: {date}\nfrom: {fromAccount}\nto: {toAccount}\ntag: {tag}\nat {timestamp} {unknown}"
	expected := "date: 2023-07-03T10:00:00.000Z\nfrom: cash\nto: [[expenses]]\ntag: [[food]]\nat 2023-07-03T10:00:00.000Z {unknown}"
	assert.Equal(t, expected, Content(tpl, lunch()))
}

func TestContentFields_DateInUTC(t *testing.T) {
	rec := lunch()
	rec.Date = time.Date(2023, 7, 3, 12, 30, 15, 250*int(time.Millisecond), time.FixedZone("CEST", 2*60*60))

	assert.Equal(t, "2023-07-03T10:30:15.250Z", ContentFields(rec)["date"])
}

func TestContentFields_Amount(t *testing.T) {
	rec := lunch()
	rec.Amount = decimal.RequireFromString("10.230")
	assert.Equal(t, "10.23", ContentFields(rec)["amount"])

	rec.Amount = decimal.NewFromInt(-5)
	assert.Equal(t, "-5", ContentFields(rec)["amount"])
}
