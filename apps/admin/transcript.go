package main

import (
	"context"
	"encoding/json"
)

func (cli *commandLine) transcript(studentID string) error {
	transcript, err := cli.gradingSvc.StudentTranscript(context.Background(), studentID)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	return enc.Encode(transcript)
}
