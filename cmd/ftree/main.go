// Package main is the entry point for the ftree command line application.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/temirov/ftree/internal/cli"
	"github.com/temirov/ftree/internal/utils"
)

const generationCancelledMessage = "tree generation cancelled"

func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer func() {
		_ = loggerInstance.Sync()
	}()

	applicationContext, stopNotifications := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stopNotifications()

	if applicationExecutionError := cli.Execute(applicationContext, loggerInstance); applicationExecutionError != nil {
		if errors.Is(applicationExecutionError, context.Canceled) {
			loggerInstance.Warn(generationCancelledMessage)
			return
		}
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
