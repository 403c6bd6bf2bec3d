package main

import (
	"fmt"

	"github.com/osse101/LondonTravel_Go/internal/config"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (tools, .env, database)"
}

// doctorCheck is one step of the diagnosis; later checks still run when one fails
type doctorCheck struct {
	name string
	run  func() error
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	checks := []doctorCheck{
		{"Dependencies", func() error { return (&CheckDepsCommand{}).Run(nil) }},
		{"Environment", checkEnv},
		{"Database", func() error { return (&CheckDBCommand{}).Run(nil) }},
	}

	var failed []string
	for _, check := range checks {
		if err := check.run(); err != nil {
			PrintError("%s check failed: %v", check.name, err)
			failed = append(failed, check.name)
			continue
		}
		PrintSuccess("%s OK", check.name)
	}

	if len(failed) > 0 {
		return fmt.Errorf("doctor found issues in: %v", failed)
	}

	PrintSuccess("All systems operational!")
	return nil
}

// checkEnv runs the same .env validation the server runs at startup
func checkEnv() error {
	PrintHeader("Checking environment...")

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		PrintWarning("%s", w)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if providers := cfg.EnabledProviders(); len(providers) == 0 {
		PrintWarning("No identity providers configured; nobody will be able to sign in")
	} else {
		PrintInfo("Sign-in providers: %v", providers)
	}
	if cfg.Alexa.IsLinkingEnabled {
		PrintInfo("Alexa linking enabled for client %s with %d redirect URLs", cfg.Alexa.ClientID, len(cfg.Alexa.RedirectURLs))
	} else {
		PrintInfo("Alexa linking disabled; /alexa/authorize will return 404")
	}
	return nil
}
