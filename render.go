package prodmd

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Format selects the output document representation.
type Format string

// Supported output formats.
const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Ext returns the file extension for documents of format f.
func (f Format) Ext() string {
	if f == FormatJSON {
		return ".json"
	}
	return ".md"
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatMarkdown, "md", "":
		return FormatMarkdown, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", Errorf(EINVALID, "unknown output format %q", s)
}

// Fixed placeholder lines for empty sections.
const (
	NoSpecsLine   = "- Non disponible"
	NoReviewsLine = "- Aucun avis disponible"
)

// Render produces the output document for rec in format f. date is the
// extraction date; only its calendar day is rendered.
func Render(rec *CanonicalRecord, f Format, date time.Time) (string, error) {
	switch f {
	case FormatMarkdown:
		return RenderMarkdown(rec, date), nil
	case FormatJSON:
		return RenderJSON(rec, date)
	}
	return "", Errorf(EINVALID, "unknown output format %q", f)
}

// RenderMarkdown formats rec as a Markdown document. Optional sections are
// omitted when empty; specifications and reviews fall back to fixed lines.
func RenderMarkdown(rec *CanonicalRecord, date time.Time) string {
	title := rec.Title
	if title == "" {
		title = "Product"
	}

	lines := []string{
		"---",
		"# " + title,
		"",
		"## 📊 Informations clés",
		"- **Prix** : " + orDash(rec.Price),
	}
	if rec.Brand != nil && *rec.Brand != "" {
		lines = append(lines, "- **Marque** : "+*rec.Brand)
	}
	lines = append(lines, "- **Note** : "+orDash(rec.Rating)+" ("+orDash(rec.ReviewCount)+")")
	if len(rec.Authors) > 0 {
		lines = append(lines, "- **Auteur(s)** : "+strings.Join(rec.Authors, ", "))
	}

	if len(rec.AboutItem) > 0 {
		lines = append(lines, "", "## 📦 À propos de cet article")
		for _, item := range rec.AboutItem {
			lines = append(lines, "- "+item)
		}
	}

	if len(rec.TechnicalDescription) > 0 {
		lines = append(lines, "", "## 📝 Description technique")
		lines = append(lines, numbered(rec.TechnicalDescription)...)
	}

	lines = append(lines, "", "## 🔧 Descriptif technique")
	if len(rec.TechnicalSpecs) > 0 {
		lines = append(lines,
			"| Caractéristique | Valeur |",
			"|-----------------|--------|",
		)
		for _, s := range rec.TechnicalSpecs {
			lines = append(lines, "| "+escapeCell(s.Key)+" | "+escapeCell(s.Value)+" |")
		}
	} else {
		lines = append(lines, NoSpecsLine)
	}

	lines = append(lines, "", "## 💬 Aperçu des avis clients")
	if len(rec.Reviews) > 0 {
		lines = append(lines, numbered(rec.Reviews)...)
	} else {
		lines = append(lines, NoReviewsLine)
	}
	lines = append(lines, "")

	if rec.Image != "" {
		lines = append(lines, "![Image produit]("+rec.Image+")", "")
	}

	lines = append(lines,
		"---",
		"🔗 **Source** : "+rec.URL,
		"📅 **Extrait le** : "+formatDate(date),
		"---",
	)
	return strings.Join(lines, "\n")
}

// jsonDocument mirrors CanonicalRecord with the extraction date.
type jsonDocument struct {
	*CanonicalRecord
	ExtractedAt string `json:"extractedAt"`
}

// RenderJSON formats rec as an indented JSON object.
func RenderJSON(rec *CanonicalRecord, date time.Time) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonDocument{CanonicalRecord: rec, ExtractedAt: formatDate(date)}); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func numbered(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strconv.Itoa(i+1) + ". " + item
	}
	return out
}

// escapeCell keeps values from breaking the specification table.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", ", ")
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func formatDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
