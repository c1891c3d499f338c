// Command readmegen-init interactively scaffolds a .repo-metadata.json so a
// repository can start rendering its README without writing the document by
// hand.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/natefinch/atomic"

	"github.com/goliatone/go-readmegen/pkg/metadata"
)

func main() {
	output := flag.String("output", ".repo-metadata.json", "where to write the metadata file")
	flag.Parse()

	repo, err := promptRepo()
	if err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}

	record := metadata.Record{Repo: repo}
	if err := record.Validate(); err != nil {
		log.Fatalf("Metadata is invalid: %v", err)
	}

	payload, err := json.MarshalIndent(repo, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode metadata: %v", err)
	}
	payload = append(payload, '\n')

	if err := atomic.WriteFile(*output, bytes.NewReader(payload)); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	fmt.Printf("Metadata written to %s\n", *output)
}

func promptRepo() (metadata.Repo, error) {
	var repo metadata.Repo

	questions := []*survey.Question{
		{
			Name:     "name",
			Prompt:   &survey.Input{Message: "API short name (e.g. asset):"},
			Validate: survey.Required,
		},
		{
			Name:     "namePretty",
			Prompt:   &survey.Input{Message: "API display name (e.g. Cloud Asset Inventory):"},
			Validate: survey.Required,
		},
		{
			Name:     "distributionName",
			Prompt:   &survey.Input{Message: "Maven coordinate (groupId:artifactId):"},
			Validate: validateDistributionName,
		},
		{
			Name:     "repo",
			Prompt:   &survey.Input{Message: "GitHub repository (owner/name):"},
			Validate: survey.Required,
		},
		{
			Name: "releaseLevel",
			Prompt: &survey.Select{
				Message: "Release level:",
				Options: []string{metadata.ReleaseLevelGA, metadata.ReleaseLevelBeta, metadata.ReleaseLevelAlpha},
				Default: metadata.ReleaseLevelGA,
			},
		},
		{
			Name: "transport",
			Prompt: &survey.Select{
				Message: "Transport:",
				Options: []string{metadata.TransportGRPC, metadata.TransportHTTP, metadata.TransportBoth, metadata.TransportNone},
				Default: metadata.TransportGRPC,
			},
		},
	}

	answers := struct {
		Name             string
		NamePretty       string
		DistributionName string
		Repo             string
		ReleaseLevel     string
		Transport        string
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return repo, err
	}

	repo.Name = answers.Name
	repo.NamePretty = answers.NamePretty
	repo.DistributionName = answers.DistributionName
	repo.Repo = answers.Repo
	repo.ReleaseLevel = answers.ReleaseLevel
	repo.Transport = answers.Transport

	if err := survey.AskOne(&survey.Input{Message: "Product documentation URL:"}, &repo.ProductDocumentation); err != nil {
		return repo, err
	}
	if err := survey.AskOne(&survey.Input{Message: "Client library documentation URL:"}, &repo.ClientDocumentation); err != nil {
		return repo, err
	}
	if err := survey.AskOne(&survey.Input{Message: "API description:"}, &repo.APIDescription); err != nil {
		return repo, err
	}
	if err := survey.AskOne(&survey.Input{Message: "API ID (blank to skip):"}, &repo.APIID); err != nil {
		return repo, err
	}
	if err := survey.AskOne(&survey.Confirm{Message: "Does the API require billing?", Default: true}, &repo.RequiresBilling); err != nil {
		return repo, err
	}

	return repo, nil
}

func validateDistributionName(value any) error {
	text, ok := value.(string)
	if !ok {
		return errors.New("expected a string")
	}
	group, artifact, found := strings.Cut(text, ":")
	if !found || strings.TrimSpace(group) == "" || strings.TrimSpace(artifact) == "" || strings.Contains(artifact, ":") {
		return fmt.Errorf("%q is not a groupId:artifactId coordinate", text)
	}
	return nil
}
