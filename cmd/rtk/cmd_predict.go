package main

import (
	"fmt"
	"io"
	"strings"

	"rtk-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

func runPredict(cmd *cobra.Command, args []string) error {
	conf, err := settings(cmd)
	if err != nil {
		return err
	}

	var req service.PredictRequest
	if err := readInput(cmd, inputFile, &req); err != nil {
		return err
	}
	if missionTime > 0 {
		req.MissionTime = missionTime
	}

	svc := service.NewPredictionService(validator.New(), conf.HRMultiplier, conf.DefaultMissionTime)
	result, err := svc.Predict(commandContext(cmd), &req)
	if err != nil {
		return err
	}

	return render(cmd, result, func(w io.Writer) {
		fmt.Fprintf(w, "Hazard rates in failures per %s hours\n\n", num(conf.HRMultiplier))
		fmt.Fprintln(w, "ID\tPARENT\tCATEGORY\tQTY\tHAZARD RATE\tLOGISTICS\tMTBF\tR(t)\tOF PARENT\tSTRESS")
		for _, p := range result.Parts {
			stress := ""
			if p.Overstressed {
				stress = "OVERSTRESSED: " + strings.Join(p.Reasons, "; ")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.ParentID, p.Category, p.Quantity,
				num(p.HazardRateActive), num(p.HazardRateLogistics), num(p.MTBF),
				num(p.Reliability), percent(p.PercentOfParent), stress)
		}

		fmt.Fprintln(w)
		fmt.Fprintf(w, "Total hazard rate\t%s\n", num(result.HazardRateActive))
		fmt.Fprintf(w, "Dormant hazard rate\t%s\n", num(result.HazardRateDormant))
		fmt.Fprintf(w, "MTBF\t%s\n", num(result.MTBF))
		fmt.Fprintf(w, "Reliability at %s h\t%s\n", num(result.MissionTime), num(result.Reliability))
		fmt.Fprintf(w, "Overstressed parts\t%d\n", result.Overstressed)
	})
}

func runCatalog(cmd *cobra.Command, args []string) error {
	conf, err := settings(cmd)
	if err != nil {
		return err
	}

	catalog := service.NewPredictionService(validator.New(), conf.HRMultiplier, conf.DefaultMissionTime).Catalog()

	return render(cmd, catalog, func(w io.Writer) {
		fmt.Fprintln(w, "CATEGORY\tSUBCATEGORIES\tQUALITY")
		for _, c := range catalog.Categories {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Category, strings.Join(c.Subcategories, ", "), strings.Join(c.Qualities, ", "))
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Environments\t%s\n", strings.Join(catalog.Environments, ", "))
		fmt.Fprintf(w, "Methods\t%s\n", strings.Join(catalog.Methods, ", "))
		fmt.Fprintf(w, "Hazard rate types\t%s\n", strings.Join(catalog.HazardRateTypes, ", "))
	})
}
