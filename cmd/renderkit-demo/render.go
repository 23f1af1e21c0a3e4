package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/renderkit-go/renderkit"
	"github.com/renderkit-go/renderkit/internal/devserver"
	"github.com/renderkit-go/renderkit/internal/snapshot"
	"github.com/renderkit-go/renderkit/internal/telemetry"
	"github.com/renderkit-go/renderkit/reactive"
	"github.com/renderkit-go/renderkit/testhost"
)

func renderCmd() *cobra.Command {
	var saveDir string
	var ticks int
	var metricsEnabled bool
	var traceEnabled bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Mount a demo counter component and print its recorded host mutations",
		RunE: func(cmd *cobra.Command, args []string) error {
			var host renderkit.HostAdapter = &testhost.Adapter{}

			var metrics *telemetry.Metrics
			if metricsEnabled {
				metrics = telemetry.Install()
				host = telemetry.Wrap(host, metrics)
			}

			var tracer *telemetry.Tracer
			if traceEnabled {
				tracer = telemetry.NewTracer(telemetry.WithTracerName("renderkit-demo"))
			}

			recorder := &devserver.RecordingAdapter{Inner: host}
			r := renderkit.CreateRenderer(recorder)
			root := testhost.NewRoot("root")

			count := reactive.NewSignal(0)
			def := counterComponent(count)

			renderPass := func(kind string, run func()) {
				var span trace.Span
				if tracer != nil {
					_, span = tracer.StartRenderSpan(context.Background(), kind)
				}
				start := time.Now()
				run()
				metrics.RecordRenderPass(kind, time.Since(start))
				if span != nil {
					span.End()
				}
			}

			renderPass("mount", func() {
				r.Render(renderkit.Component(def, nil, nil), root)
			})
			metrics.RecordMount(1)

			for i := 0; i < ticks; i++ {
				renderPass("update", func() {
					count.Update(func(n int) int { return n + 1 })
				})
			}

			for _, m := range recorder.Mutations {
				info("%s: %s", m.Op, m.Detail)
			}
			success("rendered %d mutation(s) over %d tick(s)", len(recorder.Mutations), ticks)

			if saveDir != "" {
				store, err := snapshot.NewDiskStore(saveDir)
				if err != nil {
					return err
				}
				id, err := store.Save(recorder.Trace())
				if err != nil {
					return err
				}
				success("saved trace %s to %s", id, saveDir)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&saveDir, "save", "", "directory to save a JSON trace of the render into")
	cmd.Flags().IntVar(&ticks, "ticks", 3, "number of times to increment the demo counter after mount")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics", false, "instrument the host adapter with Prometheus counters (telemetry.Wrap)")
	cmd.Flags().BoolVar(&traceEnabled, "trace", false, "wrap each render pass in an OpenTelemetry span (telemetry.NewTracer)")

	return cmd
}

// counterComponent is the demo's only component: a button-less counter that
// rerenders its text node every time count changes.
func counterComponent(count *reactive.Signal[int]) *renderkit.ComponentDef {
	return &renderkit.ComponentDef{
		Setup: func(props reactive.ReadOnlyMap, ctx renderkit.SetupContext) any {
			return func(renderkit.RenderContext) *renderkit.VNode {
				return renderkit.H("div", renderkit.Props{"class": "counter"},
					fmt.Sprintf("count: %d", count.Get()))
			}
		},
	}
}
