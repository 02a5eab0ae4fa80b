package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bayneri/boxoffice/internal/explain"
	"github.com/bayneri/boxoffice/internal/planner"
	"github.com/bayneri/boxoffice/internal/scenario"
)

const version = "0.1.0"

const adhocScenario = "adhoc"

type commandOptions struct {
	file   string
	labels string
	event  eventFlags
}

type eventFlags struct {
	name            string
	rating          float64
	arena           int
	ppvLength       int
	commentator     string
	commentatorCost float64
	cameras         int
	adBudget        float64
	prodBudget      float64
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "estimate":
		if err := runEstimate(os.Args[2:]); err != nil {
			fail(err)
		}
	case "plan":
		if err := runPlan(os.Args[2:]); err != nil {
			fail(err)
		}
	case "validate":
		if err := runValidate(os.Args[2:]); err != nil {
			fail(err)
		}
	case "report":
		if err := runReport(os.Args[2:]); err != nil {
			fail(err)
		}
	case "explain":
		if err := runExplain(os.Args[2:]); err != nil {
			fail(err)
		}
	case "init":
		if err := runInit(os.Args[2:]); err != nil {
			fail(err)
		}
	case "publish":
		if err := runPublish(os.Args[2:]); err != nil {
			fail(err)
		}
	case "export":
		if err := runExport(os.Args[2:]); err != nil {
			fail(err)
		}
	case "serve":
		if err := runServe(os.Args[2:]); err != nil {
			fail(err)
		}
	case "version":
		fmt.Println(version)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "boxoffice - event finance estimates")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  boxoffice estimate --rating 500 --arena 20000 --ppv-length 3")
	fmt.Fprintln(os.Stderr, "  boxoffice estimate -f scenario.yaml --out out/opener")
	fmt.Fprintln(os.Stderr, "  boxoffice plan     -f scenario.yaml")
	fmt.Fprintln(os.Stderr, "  boxoffice validate -f scenario.yaml")
	fmt.Fprintln(os.Stderr, "  boxoffice report   --inputs out/a/summary.json,out/b/summary.json")
	fmt.Fprintln(os.Stderr, "  boxoffice explain  model|ppv|tiers")
	fmt.Fprintln(os.Stderr, "  boxoffice init     --name arena-tour --out scenario.yaml")
	fmt.Fprintln(os.Stderr, "  boxoffice publish  -f scenario.yaml --project my-gcp-project")
	fmt.Fprintln(os.Stderr, "  boxoffice export   monitoring-json|terraform -f scenario.yaml")
	fmt.Fprintln(os.Stderr, "  boxoffice serve    --addr :8080")
}

func baseFlags(cmd string) (*flag.FlagSet, *commandOptions) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := &commandOptions{}
	fs.StringVar(&opts.file, "f", "", "path to scenario file (overrides event flags)")
	fs.StringVar(&opts.labels, "labels", "", "extra labels in key=value,key=value format")
	fs.StringVar(&opts.event.name, "name", adhocScenario, "event name when no scenario file is given")
	fs.Float64Var(&opts.event.rating, "rating", scenario.DefaultRating, "event rating (0-1000)")
	fs.IntVar(&opts.event.arena, "arena", scenario.DefaultArenaSize, "arena size in seats")
	fs.IntVar(&opts.event.ppvLength, "ppv-length", scenario.DefaultPPVLength, "PPV length in hours (0-3)")
	fs.StringVar(&opts.event.commentator, "commentator", "", "commentator tier: local, regional or national")
	fs.Float64Var(&opts.event.commentatorCost, "commentator-cost", 0, "explicit commentator cost")
	fs.IntVar(&opts.event.cameras, "cameras", scenario.DefaultCameras, "number of cameras (1-10)")
	fs.Float64Var(&opts.event.adBudget, "ad-budget", 0, "reserved ad budget input")
	fs.Float64Var(&opts.event.prodBudget, "prod-budget", 0, "reserved production budget input")
	return fs, opts
}

func eventFromFlags(fs *flag.FlagSet, in eventFlags) scenario.Event {
	ev := scenario.Event{Name: in.name}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rating":
			v := in.rating
			ev.Rating = &v
		case "arena":
			v := in.arena
			ev.ArenaSize = &v
		case "ppv-length":
			v := in.ppvLength
			ev.PPVLengthHours = &v
		case "commentator":
			ev.Commentator = in.commentator
		case "commentator-cost":
			v := in.commentatorCost
			ev.CommentatorCost = &v
		case "cameras":
			v := in.cameras
			ev.Cameras = &v
		case "ad-budget":
			v := in.adBudget
			ev.AdBudget = &v
		case "prod-budget":
			v := in.prodBudget
			ev.ProdBudget = &v
		}
	})
	return ev
}

func loadScenario(fs *flag.FlagSet, opts *commandOptions) (scenario.Scenario, error) {
	if strings.TrimSpace(opts.file) != "" {
		return scenario.Load(opts.file)
	}
	name := strings.TrimSpace(opts.event.name)
	if name == "" {
		name = adhocScenario
	}
	return scenario.Single(name, eventFromFlags(fs, opts.event)), nil
}

func buildPlan(fs *flag.FlagSet, opts *commandOptions) (planner.Plan, scenario.Scenario, error) {
	labels, err := scenario.ParseLabels(opts.labels)
	if err != nil {
		return planner.Plan{}, scenario.Scenario{}, err
	}
	doc, err := loadScenario(fs, opts)
	if err != nil {
		return planner.Plan{}, scenario.Scenario{}, err
	}
	if err := doc.Validate(); err != nil {
		return planner.Plan{}, scenario.Scenario{}, err
	}
	plan := planner.Build(doc, planner.Options{Labels: labels})
	return plan, doc, nil
}

func runPlan(args []string) error {
	fs, opts := baseFlags("plan")
	if err := fs.Parse(args); err != nil {
		return err
	}
	plan, _, err := buildPlan(fs, opts)
	if err != nil {
		return err
	}
	planner.Render(os.Stdout, plan)
	return nil
}

func runValidate(args []string) error {
	fs, opts := baseFlags("validate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, doc, err := buildPlan(fs, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Scenario %s is valid (%d events).\n", doc.Metadata.Name, len(doc.Events))
	return nil
}

func runExplain(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("explain requires a topic: %s", strings.Join(explain.Topics(), ", "))
	}
	text, err := explain.Topic(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, text)
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	if err == nil {
		os.Exit(1)
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		os.Exit(coded.ExitCode())
	}
	os.Exit(1)
}
