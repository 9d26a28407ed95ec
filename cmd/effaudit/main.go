package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"effaudit"
)

func main() {
	validateOnce := flag.Bool("validate", false, "run one benchmark validation and exit")
	flag.Parse()

	cfg, err := effaudit.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	auditor := effaudit.New(cfg)

	store, err := effaudit.OpenStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("store error: %v", err)
	}
	defer store.Close()

	notifier := effaudit.NewNotifier(cfg.SlackBotToken, cfg.SlackChannelID)

	if *validateOnce || cfg.ValidateSchedule == "" {
		summary := effaudit.RunScheduledValidation(context.Background(), cfg, auditor.Classifier, store, notifier)
		fmt.Println(effaudit.FormatBenchmarkSummary(summary))
		if summary.Accuracy < cfg.AccuracyThreshold {
			os.Exit(1)
		}
		return
	}

	effaudit.StartValidationScheduler(cfg, auditor.Classifier, store, notifier)
	log.Println("effaudit running; waiting for scheduled validations")
	select {}
}
