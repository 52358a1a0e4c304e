package console

import (
	survey "github.com/AlecAivazis/survey/v2"

	"github.com/codefind/codefind-cli/internal/searcher"
)

// PromptRequest asks for the search parameters one by one, seeding the
// prompts with the configured defaults.
func PromptRequest(defaults searcher.Request) (searcher.Request, error) {
	req := defaults
	if err := survey.AskOne(&survey.Input{Message: "Pattern (regex):"}, &req.Pattern, survey.WithValidator(survey.Required)); err != nil {
		return req, err
	}
	if err := survey.AskOne(&survey.Input{Message: "File pattern:", Default: defaults.FilePattern}, &req.FilePattern); err != nil {
		return req, err
	}
	if err := survey.AskOne(&survey.Input{Message: "Directory:", Default: defaults.Directory}, &req.Directory); err != nil {
		return req, err
	}
	if err := survey.AskOne(&survey.Confirm{Message: "Search subdirectories?", Default: defaults.Recursive}, &req.Recursive); err != nil {
		return req, err
	}
	return req, nil
}
