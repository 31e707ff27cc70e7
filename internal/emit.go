// Package internal carries the diagnostic-record plumbing shared by the
// spectral package. Records are only written when the user opts in via
// LocalOutputEnvVar; otherwise every call is a no-op.
package internal

import (
	"encoding/json"
	"log"
	"os"
)

// LocalOutputEnvVar names the file that receives one JSON record per
// assertion failure. When unset or empty, emission is disabled.
const LocalOutputEnvVar = "SPECTRAL_LOCAL_OUTPUT"

const errorLogLinePrefix = "[* spectral *]"

// JsonData marshals v and appends it as a single line to the local
// output file, if one is configured.
func JsonData(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	handler.output(string(data))
	return nil
}

// CanEmit reports whether a local output file has been requested.
func CanEmit() bool {
	path, is_set := os.LookupEnv(LocalOutputEnvVar)
	return is_set && len(path) > 0
}

type localHandler struct {
	outputFile  *os.File // can be nil
	canBeOpened bool
}

var handler = &localHandler{nil, true}

// The output file is opened lazily on the first record so that the env
// var can be set after process start. A failed open disables emission
// for the rest of the process.
func (h *localHandler) output(message string) {
	if !h.canBeOpened {
		return
	}
	if h.outputFile == nil {
		path, is_set := os.LookupEnv(LocalOutputEnvVar)
		if !is_set || len(path) == 0 {
			return
		}
		if err := h.openOutputFile(path); err != nil {
			h.canBeOpened = false
			return
		}
	}
	h.outputFile.WriteString(message + "\n")
}

// Open the file R/W (create if needed and possible) and truncate it to
// serve as the log file of the local handler.
func (h *localHandler) openOutputFile(path string) error {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		log.Printf("%s Failed to open path %s: %v", errorLogLinePrefix, path, err)
		return err
	}
	if err = file.Truncate(0); err != nil {
		log.Printf("%s Failed to truncate file at %s: %v", errorLogLinePrefix, path, err)
		file.Close()
		return err
	}
	h.outputFile = file
	return nil
}
