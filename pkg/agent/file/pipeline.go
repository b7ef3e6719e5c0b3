package file

import (
	"context"
	"fmt"
	"strings"

	"github.com/sundialhq/maestro/pkg/models"
)

// Step names the pipeline stages in execution order.
type Step string

const (
	StepIngested   Step = "file_ingested"
	StepExtracted  Step = "text_extracted"
	StepChunked    Step = "text_chunked"
	StepSummarized Step = "summaries_generated"
	StepQueried    Step = "query_processed"
	StepFormatted  Step = "output_formatted"
	StepComplete   Step = "complete"
)

// State is the transient per-file pipeline state. On any stage error the
// pipeline stops, records the error, and leaves Complete false.
type State struct {
	Blob         []byte
	Name         string
	DetectedType string
	Mode         SummaryMode
	Query        string

	ExtractedText  string
	Structure      *Structure
	Chunks         []Chunk
	ChunkSummaries []string
	FinalSummary   string
	KeyInsights    []string
	QueryResponse  string
	Metadata       map[string]any

	Errors      []string
	CurrentStep Step
	Complete    bool
}

func (st *State) fail(step Step, err error) {
	st.CurrentStep = step
	st.Errors = append(st.Errors, fmt.Sprintf("%s: %v", step, err))
}

// run drives the pipeline to completion or first error.
func (a *Agent) run(ctx context.Context, pad *models.Scratchpad, st *State) {
	// Ingest.
	if err := validateIngest(st); err != nil {
		st.fail(StepIngested, err)
		return
	}
	st.CurrentStep = StepIngested

	// Extract.
	text, structure, err := Extract(st.DetectedType, st.Blob)
	if err != nil {
		st.fail(StepExtracted, err)
		return
	}
	if strings.TrimSpace(text) == "" {
		st.fail(StepExtracted, fmt.Errorf("no text could be extracted"))
		return
	}
	st.ExtractedText = text
	st.Structure = structure
	st.CurrentStep = StepExtracted

	// Chunk.
	st.Chunks = SplitText(text)
	if len(st.Chunks) == 0 {
		st.fail(StepChunked, fmt.Errorf("chunking produced no chunks"))
		return
	}
	assignPages(st.Chunks, len(text), structure.pageEquivalents())
	st.CurrentStep = StepChunked

	// Map-reduce summarize.
	summaries, err := a.summarizeChunks(ctx, pad, st.Mode, st.Chunks)
	if err != nil {
		st.fail(StepSummarized, err)
		return
	}
	st.ChunkSummaries = summaries

	final, err := a.reduceSummaries(ctx, pad, st.Mode, st.Name, summaries)
	if err != nil {
		st.fail(StepSummarized, err)
		return
	}
	st.FinalSummary = final
	st.KeyInsights = a.extractInsights(ctx, pad, final)
	st.CurrentStep = StepSummarized

	// Optional Q&A.
	if st.Query != "" {
		answer, err := a.answerQuery(ctx, pad, st.Query, st.Chunks)
		if err != nil {
			st.fail(StepQueried, err)
			return
		}
		st.QueryResponse = answer
		st.CurrentStep = StepQueried
	}

	// Output.
	reduction := 0.0
	if len(st.ExtractedText) > 0 {
		reduction = 100 * (1 - float64(len(st.FinalSummary))/float64(len(st.ExtractedText)))
	}
	st.Metadata = map[string]any{
		"original_length":      len(st.ExtractedText),
		"summary_length":       len(st.FinalSummary),
		"reduction_percentage": reduction,
		"num_chunks":           len(st.Chunks),
		"num_insights":         len(st.KeyInsights),
		"summary_mode":         string(st.Mode),
		"file_type":            st.DetectedType,
	}
	st.CurrentStep = StepFormatted

	st.CurrentStep = StepComplete
	st.Complete = true
}

func validateIngest(st *State) error {
	if len(st.Blob) == 0 {
		return fmt.Errorf("file is empty")
	}
	if len(st.Blob) > MaxFileSize {
		return fmt.Errorf("file exceeds the 50 MiB limit (%d bytes)", len(st.Blob))
	}
	if !SupportedExtensions[st.DetectedType] {
		return fmt.Errorf("unsupported file type %q", st.DetectedType)
	}
	return nil
}
