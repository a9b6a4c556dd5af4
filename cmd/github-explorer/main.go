package main

import (
	"fmt"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/stahnma/github-explorer/internal/commands"
	"github.com/stahnma/github-explorer/internal/config"
	apperrors "github.com/stahnma/github-explorer/internal/errors"
	lambdapkg "github.com/stahnma/github-explorer/internal/lambda"
)

var (
	GitSHA   string
	GitDirty string
)

func main() {
	config.LoadDotEnv()
	cfg := config.FromEnvironment()

	app := commands.NewApp(cfg, GitSHA, GitDirty)

	if os.Getenv("LAMBDA_TASK_ROOT") != "" {
		defer app.Close()
		awslambda.Start(lambdapkg.NewHandler(app))
		return
	}

	rootCmd := app.NewRootCommand()
	err := rootCmd.Execute()
	if cerr := app.Close(); cerr != nil {
		app.Logger.Error("closing store", "error", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, apperrors.UserMessage(err))
		app.Logger.Debug("command failed", "error", err)
		os.Exit(1)
	}
}
