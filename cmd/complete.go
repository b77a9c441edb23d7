package cmd

import (
	"github.com/etnz/mortgage/docs"
	"github.com/etnz/mortgage/samples"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	methods := predict.Set{"equal-principal", "equal-installment", "fixed-payment"}
	scenario := map[string]complete.Predictor{
		"f":        predict.Or(predict.Files("*.json"), predict.Files("*.yaml"), predict.Files("*.yml")),
		"select":   predict.Something,
		"sample":   predict.Set(samples.Names()),
		"method":   methods,
		"currency": predict.Something,
		"title":    predict.Something,
		"html":     predict.Nothing,
		"json":     predict.Nothing,
	}
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"schedule": {Flags: scenario},
			"summary":  {Flags: scenario},
			"samples":  {Flags: map[string]complete.Predictor{"show": predict.Set(samples.Names())}},
			"topic":    {Args: predict.Set(topics)},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
		},
	}
}
