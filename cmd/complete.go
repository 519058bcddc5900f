package cmd

import (
	"flag"

	"github.com/etnz/growth"
	"github.com/etnz/growth/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors are the value predictors of flags with a known domain.
// Other flags predict anything.
var flagPredictors = map[string]complete.Predictor{
	"f":    predict.Files("*.csv"),
	"g":    predict.Set{growth.Day.String(), growth.Week.String(), growth.Month.String(), growth.Year.String()},
	"sort": predict.Set{growth.ByName.String(), growth.ByPrincipal.String(), growth.ByRate.String(), growth.ByFinalValue.String()},
}

// predictors returns the predictor of every flag in fs.
func predictors(fs *flag.FlagSet) map[string]complete.Predictor {
	res := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagPredictors[f.Name]; ok {
			res[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			res[f.Name] = predict.Nothing
			return
		}
		res[f.Name] = predict.Something
	})
	return res
}

// Completion returns the shell completion specification of grow.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictors(flag.CommandLine),
	}
	root.Flags["portfolio-file"] = predict.Files("*.csv")

	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: predictors(fs)}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}
