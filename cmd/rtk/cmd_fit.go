package main

import (
	"fmt"
	"io"
	"sort"

	"rtk-backend/internal/service"
	"rtk-backend/internal/survival"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

func runFit(cmd *cobra.Command, args []string) error {
	conf, err := settings(cmd)
	if err != nil {
		return err
	}

	var req service.SurvivalFitRequest
	if err := readInput(cmd, inputFile, &req); err != nil {
		return err
	}
	if distribution != "" {
		req.Distribution = distribution
	}
	if confidence > 0 {
		req.Confidence = confidence
	}

	svc := service.NewSurvivalService(nil, nil, nil, validator.New(), conf.DefaultConfidence)
	result, err := svc.FitData(commandContext(cmd), &req)
	if err != nil {
		return err
	}

	return render(cmd, result, func(w io.Writer) {
		if len(result.Rankings) > 0 {
			fmt.Fprintln(w, "RANK\tDISTRIBUTION\tAIC\tBIC\tLOG-LIKELIHOOD")
			for _, r := range result.Rankings {
				if r.Fit == nil {
					fmt.Fprintf(w, "-\t%s\t\t\t%s\n", r.Distribution, r.Error)
					continue
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.Rank, r.Distribution, num(r.Fit.AIC), num(r.Fit.BIC), num(r.Fit.LogLikelihood))
			}
			fmt.Fprintln(w)
		}

		writeFit(w, result.Fit)

		if len(result.KaplanMeier) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "TIME\tAT RISK\tFAILURES\tSURVIVAL\tBOUNDS")
			for _, p := range result.KaplanMeier {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", num(p.Time), num(p.AtRisk), num(p.Failures), num(p.Survival), bounds(p.Lower, p.Upper))
			}
		}
		if len(result.MCF) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "TIME\tAT RISK\tEVENTS\tMCF\tBOUNDS")
			for _, p := range result.MCF {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", num(p.Time), p.AtRisk, num(p.Events), num(p.MCF), bounds(p.Lower, p.Upper))
			}
		}
	})
}

func writeFit(w io.Writer, fit *survival.Fit) {
	if fit == nil {
		return
	}
	fmt.Fprintf(w, "%s fit (%d failures, %d suspensions, %s confidence)\n", fit.Distribution, fit.Failures, fit.Suspensions, percent(100*fit.Confidence))

	names := make([]string, 0, len(fit.Parameters))
	for name := range fit.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lower, hasLower := fit.Lower[name]
		upper, hasUpper := fit.Upper[name]
		if hasLower && hasUpper {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", name, num(fit.Parameters[name]), bounds(lower, upper))
		} else {
			fmt.Fprintf(w, "  %s\t%s\t\n", name, num(fit.Parameters[name]))
		}
	}
	fmt.Fprintf(w, "  log-likelihood\t%s\t\n", num(fit.LogLikelihood))
	fmt.Fprintf(w, "  AIC\t%s\t\n", num(fit.AIC))
	fmt.Fprintf(w, "  BIC\t%s\t\n", num(fit.BIC))
}
