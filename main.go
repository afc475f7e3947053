package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

func main() {
	ctx, cancel := makeRootContext()
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, nil))
}
