// Command coltable is a demonstration CLI for the columnar table engine:
// it builds a Table from a CSV file against a YAML schema, then scans it,
// reports representation/memory stats, or exports it as Arrow — all
// within one process run, since the engine itself never persists anything
// to disk.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/colstorehq/coltable/pkg/arrowbridge"
	"github.com/colstorehq/coltable/pkg/coltable"
	"github.com/colstorehq/coltable/pkg/coltable/codec"
	"github.com/colstorehq/coltable/pkg/config"
	"github.com/colstorehq/coltable/pkg/logger"
	"github.com/colstorehq/coltable/pkg/metrics"
	"github.com/colstorehq/coltable/pkg/sysinfo"
)

var version = "0.1.0"

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "coltable",
		Short: "coltable - in-memory columnar table engine",
		Long:  "coltable builds immutable, column-compressed tables from CSV input and lets you scan, inspect, or export them.",
	}

	root.AddCommand(versionCmd(), buildCmd(), scanCmd(), statsCmd(), exportArrowCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("coltable v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

type buildInputs struct {
	schemaPath      string
	csvPath         string
	selectorCfgPath string
	logLevel        string
}

func addBuildFlags(cmd *cobra.Command, in *buildInputs) {
	cmd.Flags().StringVar(&in.schemaPath, "schema", "", "Path to the YAML column schema (required)")
	cmd.Flags().StringVar(&in.csvPath, "csv", "", "Path to the CSV file to load (required)")
	cmd.Flags().StringVar(&in.selectorCfgPath, "selector-config", "", "Path to an optional selector policy YAML file")
	cmd.Flags().StringVar(&in.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("csv")
}

func buildTable(in *buildInputs) (*coltable.Table, error) {
	if err := logger.Init(logger.Config{Level: in.logLevel, Encoding: "console"}); err != nil {
		return nil, err
	}

	schema, err := loadSchema(in.schemaPath)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	selectorCfg := config.DefaultSelectorConfig()
	if in.selectorCfgPath != "" {
		selectorCfg, err = config.LoadSelectorConfig(in.selectorCfgPath)
		if err != nil {
			return nil, fmt.Errorf("loading selector config: %w", err)
		}
	}

	f, err := os.Open(in.csvPath)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	builder := coltable.NewBuilder(schema, selectorCfg, in.csvPath)
	if err := builder.AppendCSV(csv.NewReader(f)); err != nil {
		return nil, fmt.Errorf("appending csv rows: %w", err)
	}

	timer := metrics.NewTimer()
	table, err := builder.Freeze()
	if err != nil {
		return nil, fmt.Errorf("freezing table: %w", err)
	}
	metrics.TablesFrozen.Inc()
	for i := 0; i < table.ColumnCount(); i++ {
		col := table.Column(i)
		rep := col.Representation().String()
		metrics.ColumnsFrozen.WithLabelValues(rep).Inc()
		metrics.FreezeLatency.WithLabelValues(rep).Observe(timer.Stop().Seconds())
	}

	logger.Info("table built", zap.Int("rows", table.RowCount()), zap.Int("columns", table.ColumnCount()))
	return table, nil
}

func buildCmd() *cobra.Command {
	in := &buildInputs{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a table from CSV and report its chosen representations",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := buildTable(in)
			if err != nil {
				return err
			}
			printStats(table)
			return nil
		},
	}
	addBuildFlags(cmd, in)
	return cmd
}

func scanCmd() *cobra.Command {
	in := &buildInputs{}
	var limit int
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Build a table and print its rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := buildTable(in)
			if err != nil {
				return err
			}

			w := csv.NewWriter(os.Stdout)
			defer w.Flush()

			timer := metrics.NewTimer()
			throughput := metrics.NewThroughputTracker()
			cursor := table.Scan()
			printed := 0
			for cursor.Advance() {
				if limit > 0 && printed >= limit {
					break
				}
				row := cursor.CurrentRow()
				record := make([]string, len(row))
				for i, v := range row {
					record[i] = formatValue(table.Schema()[i].Type, v)
				}
				if err := w.Write(record); err != nil {
					return err
				}
				printed++
				throughput.Increment(1)
			}
			metrics.ScanRows.Add(float64(printed))
			metrics.ScanLatency.Observe(timer.Stop().Seconds())
			fmt.Fprintf(cmd.ErrOrStderr(), "scanned %d rows, %.0f rows/sec\n", printed, throughput.GetAndReset())
			return nil
		},
	}
	addBuildFlags(cmd, in)
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of rows to print (0 = all)")
	return cmd
}

func statsCmd() *cobra.Command {
	in := &buildInputs{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Build a table and report representation and memory statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := buildTable(in)
			if err != nil {
				return err
			}
			printStats(table)

			mon, err := sysinfo.NewMonitor()
			if err != nil {
				return err
			}
			snap, err := mon.Sample()
			if err != nil {
				return err
			}
			fmt.Printf("process resident memory: %d bytes\n", snap.ResidentMemoryBytes)
			fmt.Printf("goroutines: %d\n", snap.GoroutineCount)
			return nil
		},
	}
	addBuildFlags(cmd, in)
	return cmd
}

func exportArrowCmd() *cobra.Command {
	in := &buildInputs{}
	var outPath string
	cmd := &cobra.Command{
		Use:   "export-arrow",
		Short: "Build a table and write it out as an Arrow IPC file",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := buildTable(in)
			if err != nil {
				return err
			}

			record, err := arrowbridge.Export(table)
			if err != nil {
				return err
			}
			defer record.Release()

			out, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer out.Close()

			writer, err := ipc.NewFileWriter(out, ipc.WithSchema(record.Schema()))
			if err != nil {
				return err
			}
			if err := writer.Write(record); err != nil {
				return err
			}
			return writer.Close()
		},
	}
	addBuildFlags(cmd, in)
	cmd.Flags().StringVar(&outPath, "out", "table.arrow", "Output Arrow IPC file path")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func printStats(table *coltable.Table) {
	if ctx := table.Context(); ctx != nil {
		fmt.Printf("source: %v\n", ctx)
	}
	fmt.Printf("rows: %d, columns: %d\n", table.RowCount(), table.ColumnCount())
	for i, spec := range table.Schema() {
		col := table.Column(i)
		fmt.Printf("  %-20s %-12s nullable=%-5v representation=%s\n",
			spec.Name, spec.Type, spec.Nullable, col.Representation())
	}
}

func formatValue(t coltable.LogicalType, v codec.Value) string {
	if v.IsNull {
		return ""
	}
	switch t {
	case coltable.TypeBoolean:
		return strconv.FormatBool(v.Bool())
	case coltable.TypeByte, coltable.TypeShort, coltable.TypeInt, coltable.TypeLong:
		return strconv.FormatInt(v.Int(), 10)
	case coltable.TypeChar:
		return string(rune(v.Char()))
	case coltable.TypeFloat:
		return strconv.FormatFloat(float64(v.Float32()), 'g', -1, 32)
	case coltable.TypeDouble:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case coltable.TypeString:
		return v.String()
	case coltable.TypeByteString:
		return string(v.Bytes())
	default:
		return fmt.Sprintf("%v", v.Object())
	}
}
