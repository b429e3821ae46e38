package benchsample_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/benchsample"
	"github.com/hupe1980/benchsample/blobstore"
	"github.com/hupe1980/benchsample/record"
)

func ExampleSampler_SampleWithAnswers() {
	records := []record.Record{
		{"id": "exec_simple_84", "question": "84?"},
		{"id": "exec_simple_3", "question": "3?"},
		{"id": "exec_simple_21", "question": "21?"},
	}
	answers := []record.Record{
		{"id": "exec_simple_3", "truth": "three"},
		{"id": "exec_simple_84", "truth": "eighty-four"},
		{"id": "exec_simple_21", "truth": "twenty-one"},
	}

	// Ratio 1 keeps everything, so the output is fully deterministic:
	// sorted by the composite ID sort key, records and answers aligned.
	sampler, err := benchsample.New(1)
	if err != nil {
		log.Fatal(err)
	}

	recs, ans, err := sampler.SampleWithAnswers(records, answers)
	if err != nil {
		log.Fatal(err)
	}
	for i := range recs {
		fmt.Println(recs[i].ID(), "->", ans[i]["truth"])
	}
	// Output:
	// exec_simple_3 -> three
	// exec_simple_21 -> twenty-one
	// exec_simple_84 -> eighty-four
}

func ExampleRunner() {
	ctx := context.Background()

	src := blobstore.NewMemoryStore()
	_ = src.Put(ctx, "BFCL_v3_exec.json", []byte(
		`{"id":"exec_simple_2"}`+"\n"+`{"id":"exec_simple_1"}`+"\n",
	))
	dst := blobstore.NewMemoryStore()

	sampler, err := benchsample.New(1)
	if err != nil {
		log.Fatal(err)
	}

	report, err := benchsample.NewRunner(src, dst, sampler).Run(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("files:", len(report.Files), "records:", report.Records())
	// Output:
	// files: 1 records: 2
}
