// Command chiton finds the lowest-risk route through a chiton cave map.
//
//	chiton solve [FILE]        print the minimum total risk
//	chiton serve --addr :8080  expose the search over HTTP
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := newRootCmd(log).Execute(); err != nil {
		os.Exit(1)
	}
}
