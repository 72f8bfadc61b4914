package tables

import (
	"log/slog"
	"strings"

	"github.com/tsawler/fintab/logging"
	"github.com/tsawler/fintab/model"
	"github.com/tsawler/fintab/rows"
)

// Assembler reconstructs one document's table from its OCR text.
// An Assembler holds no per-document state and is safe for concurrent use
// once configured.
type Assembler struct {
	config    Config
	extractor *rows.Extractor
}

// NewAssembler creates an assembler with default configuration.
func NewAssembler() *Assembler {
	a := &Assembler{}
	_ = a.Configure(DefaultConfig())
	return a
}

// Name returns the assembler's identifier ("text").
func (a *Assembler) Name() string {
	return "text"
}

// Configure sets the assembler configuration.
func (a *Assembler) Configure(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	a.config = config
	a.extractor = rows.NewExtractor(config.MinRowTokens, config.Denylist...)
	return nil
}

// Config returns the current configuration.
func (a *Assembler) Config() Config {
	return a.config
}

// Assemble builds the table for one document. Problems never abort the
// document: the worst outcome is an empty table plus warnings.
func (a *Assembler) Assemble(document, text string) (*model.Table, []model.Warning) {
	return a.AssembleLines(document, SplitLines(text))
}

// AssembleLines is Assemble for text already split into lines.
func (a *Assembler) AssembleLines(document string, lines []string) (*model.Table, []model.Warning) {
	log := logging.For("tables").With(slog.String("document", document))

	header := detectHeader(lines, a.config.MinHeaderPeriods)
	candidates := a.extractor.Extract(lines)
	if a.config.ExcludeHeaderLine && header.Marked() {
		candidates = dropLine(candidates, header.Line)
	}

	kept, mode := rows.SelectMode(candidates)
	log.Debug("rows selected",
		slog.Int("candidates", len(candidates)),
		slog.Int("kept", len(kept)),
		slog.Int("mode", mode))

	if len(kept) == 0 {
		return model.NewTable(document, nil), []model.Warning{
			model.Warningf(model.WarnNoRows, document, "no data rows found"),
		}
	}

	var warnings []model.Warning
	periods := header.Periods()
	columns := model.PeriodColumns(periods)
	if len(periods) != mode {
		if header.Found() {
			warnings = append(warnings, model.Warningf(model.WarnHeaderMismatch, document,
				"found %d headers but data has %d columns, using generic headers", len(periods), mode))
		} else {
			log.Debug("no header line, using generic headers", slog.Int("columns", mode))
		}
		columns = model.GenericColumns(mode)
	}

	// every kept row has exactly mode values
	table := model.NewTable(document, columns)
	table.Rows = rows.DataRows(kept)
	return table, warnings
}

// SplitLines splits text into lines, accepting both \n and \r\n endings.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(strings.TrimSpace(text), "\n")
}

func dropLine(candidates []rows.Candidate, line int) []rows.Candidate {
	out := candidates[:0:0]
	for _, c := range candidates {
		if c.Line != line {
			out = append(out, c)
		}
	}
	return out
}
