package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/expki/go-attention/compute"
	"github.com/expki/go-attention/config"
	"github.com/expki/go-attention/logger"
	"github.com/expki/go-attention/render"
	"github.com/expki/go-attention/samples"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the visualization and returns the process exit code. Deferred cleanup runs before main exits.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("attnviz", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		configPath  = flags.String("config", "", "path to a JSON config file")
		samplePath  = flags.String("sample", "", "write a sample config file to this path and exit")
		temperature = flags.Float64("temperature", 0, "softmax temperature, overrides the config when positive")
		selected    = flags.Int("token", 0, "index of the query token whose attention is detailed")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *samplePath != "" {
		if err := config.CreateSample(*samplePath); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintf(stdout, "sample config written to %s\n", *samplePath)
		return 0
	}

	tokens := samples.TokenTexts()
	if *selected < 0 || *selected >= len(tokens) {
		fmt.Fprintf(stderr, "token index %d out of range [0, %d)\n", *selected, len(tokens))
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	if *temperature > 0 {
		cfg.Temperature = *temperature
	}

	if err := logger.Initialize(cfg.LogLevel.Zap()); err != nil {
		fmt.Fprintf(stderr, "could not initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()
	logger.Sugar().Infof("using %s compute backend", compute.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tag, _ := cfg.Language()
	app := viz{
		out:       stdout,
		config:    cfg,
		formatter: render.NewFormatter(tag),
	}
	if err := app.run(ctx, *selected); err != nil {
		logger.Sugar().Errorf("visualization failed: %v", err)
		return 1
	}
	return 0
}

type viz struct {
	out       io.Writer
	config    config.Config
	formatter render.Formatter
}

func (v viz) run(ctx context.Context, selected int) error {
	if err := v.softmaxTable(); err != nil {
		return fmt.Errorf("softmax table: %w", err)
	}
	if err := v.heatmap(); err != nil {
		return fmt.Errorf("heatmap: %w", err)
	}
	if err := v.selfAttention(ctx, selected); err != nil {
		return fmt.Errorf("self attention: %w", err)
	}
	return nil
}

// softmaxTable prints every step from logit to probability for the example answers.
func (v viz) softmaxTable() error {
	breakdown, err := compute.SoftmaxBreakdown(samples.LogitValues(), v.config.Temperature)
	if err != nil {
		return err
	}
	decimals := v.config.NumberDecimals
	fmt.Fprintf(v.out, "Softmax (τ = %s)\n\n", v.formatter.Number(breakdown.Temperature, 1))
	w := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "word\tlogit\tlogit/τ\texp(logit/τ - max)\tprobability\t")
	for i, logit := range samples.Logits() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
			logit.Word,
			v.formatter.Number(logit.Logit, 1),
			v.formatter.Number(breakdown.Scaled[i], 2),
			v.formatter.Number(breakdown.Exponentials[i], decimals),
			v.formatter.Percent(breakdown.Probabilities[i], v.config.PercentDecimals),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	var total float64
	for _, p := range breakdown.Probabilities {
		total += p
	}
	fmt.Fprintf(v.out, "\nΣ exp = %s, Σ p = %s, entropy = %s nats\n\n",
		v.formatter.Number(breakdown.Sum, decimals),
		v.formatter.Number(total, 6),
		v.formatter.Number(compute.Entropy(breakdown.Probabilities), decimals),
	)
	return nil
}

// heatmap prints the row-wise softmax of the example score matrix as colored cells.
func (v viz) heatmap() error {
	weights, err := compute.SoftmaxRows(samples.HeatmapScores(), v.config.Temperature)
	if err != nil {
		return err
	}
	tokens := samples.TokenTexts()
	heatmap := render.Heatmap{
		Palette:   v.config.Palette.Render(),
		Formatter: v.formatter,
		Decimals:  v.config.PercentDecimals,
	}
	fmt.Fprintln(v.out, "Attention heatmap")
	fmt.Fprintln(v.out)
	fmt.Fprintf(v.out, "%-8s", "")
	for _, token := range tokens {
		fmt.Fprintf(v.out, " %-8s", token)
	}
	fmt.Fprintln(v.out)
	for i, row := range heatmap.Cells(weights) {
		fmt.Fprintf(v.out, "%-8s", tokens[i])
		for _, cell := range row {
			fmt.Fprintf(v.out, " %s%-8s%s", cell.Color.ANSIBackground(), cell.Label, render.ANSIReset)
		}
		fmt.Fprintln(v.out)
	}
	fmt.Fprintln(v.out)
	return nil
}

// selfAttention runs attention over the example embeddings with Q = K = V and details one token.
func (v viz) selfAttention(ctx context.Context, selected int) error {
	tokens := samples.TokenTexts()
	if selected < 0 || selected >= len(tokens) {
		return fmt.Errorf("token index %d out of range [0, %d)", selected, len(tokens))
	}
	embeddings := samples.EmbeddingMatrix()
	result, err := compute.Attention(ctx, embeddings, embeddings, embeddings, v.config.Temperature)
	if err != nil {
		return err
	}
	palette := v.config.Palette.Render()
	fmt.Fprintf(v.out, "Self attention of %q\n\n", tokens[selected])
	w := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "key\tscore\tweight\tcolor\t")
	for i, token := range tokens {
		weight := result.Weights[selected][i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			token,
			v.formatter.Number(result.Scores[selected][i], v.config.NumberDecimals),
			v.formatter.Percent(weight, v.config.PercentDecimals),
			palette.Color(weight),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	output := make([]string, len(result.Outputs[selected]))
	for i, value := range result.Outputs[selected] {
		output[i] = v.formatter.Number(value, v.config.NumberDecimals)
	}
	fmt.Fprintf(v.out, "\noutput = [%s]\n", strings.Join(output, ", "))
	return nil
}
