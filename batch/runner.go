// Package batch runs a prompt-template experiment over a folder of
// extracted documents: each document is combined with the template and
// sent to a model N times, with rate limiting and retry, and every
// execution lands as one CSV row. Partial failures never abort a run.
package batch

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/lexdoc"
	"golang.org/x/time/rate"
)

// MaxDocumentSize is the largest document (in characters) sent to the
// model; anything bigger records an error row instead of a call.
const MaxDocumentSize = 1_000_000

// DefaultExecutions is how many times each document is run by default.
const DefaultExecutions = 3

// DefaultRate is the default model-call rate in calls per second.
const DefaultRate = 1.0

// DocumentInput is one document loaded for the experiment.
type DocumentInput struct {
	Name    string
	Content string
}

// Runner executes the batch experiment.
type Runner struct {
	Asker       lexdoc.Asker
	Executions  int             // per document; DefaultExecutions when zero
	Limiter     *rate.Limiter   // optional; nil disables rate limiting
	RetryDelays []time.Duration // nil selects DefaultRetryDelays
	Logger      *slog.Logger    // nil selects slog.Default
}

// LoadPromptTemplate reads the prompt template from a file.
func LoadPromptTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	template := strings.TrimSpace(string(data))
	if template == "" {
		return "", lexdoc.Errorf(lexdoc.EINVALID, "prompt template %q is empty", path)
	}
	return template, nil
}

// LoadDocuments reads every .md and .txt file in dir as a document,
// ordered by name. Editor temp files (the "~$" prefix) are skipped.
func LoadDocuments(dir string) ([]DocumentInput, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var docs []DocumentInput
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), "~$") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".md" && ext != ".txt" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, DocumentInput{Name: entry.Name(), Content: string(data)})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })

	if len(docs) == 0 {
		return nil, lexdoc.Errorf(lexdoc.ENOTFOUND, "no documents found in %q", dir)
	}
	return docs, nil
}

// BuildPrompt combines the template with one document's content.
func BuildPrompt(template, name, content string) string {
	var sb strings.Builder
	sb.WriteString(template)
	sb.WriteString("\n\n<document>\n")
	fmt.Fprintf(&sb, "<name>%s</name>\n", name)
	fmt.Fprintf(&sb, "<content>%s</content>\n", content)
	sb.WriteString("</document>")
	return sb.String()
}

// csvHeader is the fixed column layout of the results file.
var csvHeader = []string{"document", "execution", "timestamp", "response", "error"}

// Run executes the experiment over every document and streams one CSV
// row per execution to out. A failed execution records its error in
// the row and the run continues; only context cancellation and CSV
// write failures abort.
func (r *Runner) Run(ctx context.Context, template string, docs []DocumentInput, out io.Writer) error {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	executions := r.Executions
	if executions <= 0 {
		executions = DefaultExecutions
	}
	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	retryLog := func(format string, args ...any) {
		logger.Warn(fmt.Sprintf(format, args...))
	}

	for _, doc := range docs {
		if utf8.RuneCountInString(doc.Content) > MaxDocumentSize {
			logger.Warn("document too large, skipping", "document", doc.Name)
			if err := writeRow(w, doc.Name, 0, "", fmt.Sprintf("document exceeds %d characters", MaxDocumentSize)); err != nil {
				return err
			}
			continue
		}

		prompt := BuildPrompt(template, doc.Name, doc.Content)

		for i := 1; i <= executions; i++ {
			if r.Limiter != nil {
				if err := r.Limiter.Wait(ctx); err != nil {
					return err
				}
			}

			response, err := AskWithRetryDelays(ctx, prompt, r.Asker.Ask, retryLog, delays)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Warn("execution failed", "document", doc.Name, "execution", i, "err", err)
				if werr := writeRow(w, doc.Name, i, "", err.Error()); werr != nil {
					return werr
				}
				continue
			}

			logger.Info("execution complete", "document", doc.Name, "execution", i)
			if err := writeRow(w, doc.Name, i, response, ""); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

func writeRow(w *csv.Writer, document string, execution int, response, errMsg string) error {
	return w.Write([]string{
		document,
		strconv.Itoa(execution),
		time.Now().UTC().Format(time.RFC3339),
		response,
		errMsg,
	})
}
