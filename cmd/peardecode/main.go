// Command peardecode decodes saved PEAR REST documents and prints them as
// JSON or YAML.
package main

import (
	"os"

	"github.com/andaru/pear/internal/cli"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := cli.NewRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
