package main

import (
	"fmt"
	"io"

	"rtk-backend/internal/growth"
	"rtk-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

func runGrowth(cmd *cobra.Command, args []string) error {
	conf, err := settings(cmd)
	if err != nil {
		return err
	}

	var req service.GrowthFitRequest
	if err := readInput(cmd, inputFile, &req); err != nil {
		return err
	}
	if confidence > 0 {
		req.Confidence = confidence
	}

	// FitData never touches storage
	svc := service.NewGrowthService(nil, nil, nil, validator.New(), conf.DefaultConfidence)
	result, err := svc.FitData(commandContext(cmd), &req)
	if err != nil {
		return err
	}

	return render(cmd, result, func(w io.Writer) {
		if c := result.CrowAMSAA; c != nil {
			fmt.Fprintf(w, "Crow-AMSAA (%s, %d failures, T = %s, %s confidence)\n", c.Termination, c.Failures, num(c.TestTime), percent(100*c.Confidence))
			fmt.Fprintf(w, "  beta\t%s\t%s\n", num(c.Beta), bounds(c.BetaLower, c.BetaUpper))
			fmt.Fprintf(w, "  beta (unbiased)\t%s\t\n", num(c.BetaUnbiased))
			fmt.Fprintf(w, "  lambda\t%s\t\n", num(c.Lambda))
			fmt.Fprintf(w, "  growth rate\t%s\t\n", num(c.GrowthRate))
			fmt.Fprintf(w, "  cumulative MTBF\t%s\t\n", num(c.CumulativeMTBF))
			fmt.Fprintf(w, "  instantaneous MTBF\t%s\t%s\n", num(c.InstantaneousMTBF), bounds(c.InstantaneousMTBFLower, c.InstantaneousMTBFUpper))
		}
		if g := result.Grouped; g != nil {
			fmt.Fprintf(w, "Crow-AMSAA grouped (%d intervals, %d failures, T = %s)\n", g.Intervals, g.Failures, num(g.TestTime))
			fmt.Fprintf(w, "  beta\t%s\n", num(g.Beta))
			fmt.Fprintf(w, "  lambda\t%s\n", num(g.Lambda))
			fmt.Fprintf(w, "  growth rate\t%s\n", num(g.GrowthRate))
			fmt.Fprintf(w, "  cumulative MTBF\t%s\n", num(g.CumulativeMTBF))
			fmt.Fprintf(w, "  instantaneous MTBF\t%s\n", num(g.InstantaneousMTBF))
			fmt.Fprintf(w, "  chi-square\t%s (%d df, p = %s)\n", num(g.ChiSquare), g.DegreesOfFreedom, num(g.PValue))
			fmt.Fprintf(w, "  good fit\t%t\n", g.GoodFit)
		}
		if d := result.Duane; d != nil {
			fmt.Fprintln(w, "Duane")
			fmt.Fprintf(w, "  alpha\t%s\t\n", num(d.Alpha))
			fmt.Fprintf(w, "  b\t%s\t\n", num(d.B))
			fmt.Fprintf(w, "  r-squared\t%s\t\n", num(d.RSquared))
			fmt.Fprintf(w, "  cumulative MTBF\t%s\t\n", num(d.CumulativeMTBF))
			fmt.Fprintf(w, "  instantaneous MTBF\t%s\t\n", num(d.InstantaneousMTBF))
		}
		writeTrend(w, result.MilHandbook)
		writeTrend(w, result.Laplace)

		if result.GoalMTBF > 0 && result.TimeToGoal > 0 {
			fmt.Fprintf(w, "Test time to reach %s MTBF\t%s\t\n", num(result.GoalMTBF), num(result.TimeToGoal))
		}
		if len(result.PlanCurve) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "TIME\tPLANNED CUMULATIVE MTBF\tPLANNED INSTANTANEOUS MTBF")
			for _, p := range result.PlanCurve {
				fmt.Fprintf(w, "%s\t%s\t%s\n", num(p.Time), num(p.CumulativeMTBF), num(p.InstantaneousMTBF))
			}
		}
	})
}

func writeTrend(w io.Writer, t *growth.TrendResult) {
	if t == nil {
		return
	}
	verdict := "no trend"
	if t.TrendIndicated {
		verdict = t.Direction
	}
	fmt.Fprintf(w, "%s trend test\t%s\tp = %s, %s\n", t.Test, num(t.Statistic), num(t.PValue), verdict)
}
