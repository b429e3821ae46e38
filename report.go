package benchsample

// FileResult records the outcome of processing one collection.
//
// A failed file carries its error here instead of aborting the batch; the
// continue-on-error policy is explicit and testable.
type FileResult struct {
	// Name is the collection name relative to the source root.
	Name string

	// Records is the number of sampled records written.
	Records int

	// Answers is the number of ground-truth answers written.
	Answers int

	// HasAnswers reports whether a matching answer collection was found.
	HasAnswers bool

	// Err is non-nil if processing this file failed. The file is then
	// missing from the destination; other files are unaffected.
	Err error
}

// Report summarizes a batch run over a source directory.
type Report struct {
	Files []FileResult
}

// Failed returns the results of all files that could not be processed.
func (r *Report) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// Records returns the total number of sampled records written.
func (r *Report) Records() int {
	total := 0
	for _, f := range r.Files {
		total += f.Records
	}
	return total
}

// Answers returns the total number of ground-truth answers written.
func (r *Report) Answers() int {
	total := 0
	for _, f := range r.Files {
		total += f.Answers
	}
	return total
}
