package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	PromptFile string  `arg:"" required:"" help:"File holding the prompt template"`
	DocsDir    string  `arg:"" required:"" help:"Directory of extracted .md or .txt documents"`
	Output     string  `arg:"" optional:"" default:"results.csv" help:"CSV file to write results to"`
	Executions int           `short:"e" default:"3" help:"Executions per document"`
	Rate       float64       `short:"r" default:"1.0" help:"Requests per second"`
	Timeout    time.Duration `short:"t" default:"0" help:"Overall run timeout (0 disables)"`
	Model      string        `short:"m" default:"gemini-2.5-flash" help:"Gemini model to use"`
}
