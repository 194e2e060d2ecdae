package extract

import (
	"strings"

	"github.com/fwojciec/prodmd"
)

const (
	techSpecSection1   = "#productDetails_techSpec_section_1"
	techSpecSection2   = "#productDetails_techSpec_section_2"
	detailTableSection = "#productDetails_detailBullets_sections1"
	keyValueTable      = ".a-keyvalue.prodDetTable"
	detailBulletList   = "#detailBullets_feature_div"
)

// technicalSpecs reads key/value pairs from the first specification source
// yielding a pair. Both technical sections are merged into one source.
func (x *Extractor) technicalSpecs(doc prodmd.Document) ([]prodmd.SpecPair, string) {
	rows := func(name string, sections ...string) candidate[[]prodmd.SpecPair] {
		return candidate[[]prodmd.SpecPair]{
			name: name,
			find: func(doc prodmd.Document) ([]prodmd.SpecPair, bool) {
				specs := x.newSpecs()
				for _, section := range sections {
					specs.parseRows(prodmd.First(doc, section))
				}
				return specs.pairs, len(specs.pairs) > 0
			},
		}
	}
	return firstOf(doc,
		rows("tech-spec", techSpecSection1, techSpecSection2),
		rows("detail-table", detailTableSection),
		rows("key-value-table", keyValueTable),
		candidate[[]prodmd.SpecPair]{name: "detail-bullets", find: func(doc prodmd.Document) ([]prodmd.SpecPair, bool) {
			specs := x.newSpecs()
			specs.parseBullets(prodmd.First(doc, detailBulletList))
			return specs.pairs, len(specs.pairs) > 0
		}},
	)
}

// specList accumulates distinct pairs up to a cap.
type specList struct {
	max   int
	pairs []prodmd.SpecPair
	seen  map[prodmd.SpecPair]bool
}

func (x *Extractor) newSpecs() *specList {
	return &specList{max: x.config.MaxSpecs, seen: make(map[prodmd.SpecPair]bool)}
}

func (l *specList) full() bool {
	return len(l.pairs) >= l.max
}

func (l *specList) add(key, value string) {
	key = strings.TrimSpace(strings.TrimSuffix(prodmd.Normalize(key), ":"))
	value = prodmd.Normalize(value)
	if key == "" || value == "" || prodmd.IsIgnoredSpecKey(key) {
		return
	}
	p := prodmd.SpecPair{Key: key, Value: value}
	if l.seen[p] {
		return
	}
	l.seen[p] = true
	l.pairs = append(l.pairs, p)
}

// parseRows reads one pair per table row: the header or first cell is the
// key, the last or second cell the value.
func (l *specList) parseRows(table prodmd.Element) {
	for _, row := range prodmd.All(table, "tr") {
		if l.full() {
			return
		}
		left := prodmd.First(row, "th")
		if left == nil {
			left = prodmd.First(row, "td:first-child")
		}
		right := prodmd.First(row, "td:last-child")
		if right == nil {
			right = prodmd.First(row, "td:nth-child(2)")
		}
		if left == nil || right == nil {
			continue
		}
		l.add(left.Text(), right.Text())
	}
}

// parseBullets reads "key: value" list items, splitting on the first colon.
func (l *specList) parseBullets(list prodmd.Element) {
	for _, item := range prodmd.All(list, "li span.a-list-item, li") {
		if l.full() {
			return
		}
		key, value, ok := strings.Cut(item.Text(), ":")
		if !ok || strings.TrimSpace(key) == "" {
			continue
		}
		l.add(key, value)
	}
}
