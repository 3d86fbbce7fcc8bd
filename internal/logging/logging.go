package logging

import (
	"log"
	"os"
)

var (
	Info  = log.New(os.Stderr, "[INFO] ", log.LstdFlags)
	Error = log.New(os.Stderr, "[ERROR] ", log.LstdFlags)
)
