package fcp

import (
	"encoding/xml"
	"fmt"
	"math"
	"os"
	"time"
)

func FormatDurationForFCPXML(d time.Duration) string {
	// Convert to frame-aligned format for 30fps video
	// 30000 frames per second with 1001/30000s frame duration
	totalFrames := int64(d.Seconds() * 30000 / 1001)
	// Ensure frame alignment
	return fmt.Sprintf("%d/30000s", totalFrames*1001)
}

// FormatSecondsForFCPXML is FormatDurationForFCPXML for float seconds.
func FormatSecondsForFCPXML(seconds float64) string {
	return FormatDurationForFCPXML(time.Duration(math.Round(seconds * float64(time.Second))))
}

// Marshal renders a document with the XML header and FCPXML doctype.
func Marshal(doc FCPXML) ([]byte, error) {
	output, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, err
	}

	xmlContent := xml.Header + "<!DOCTYPE fcpxml>\n" + string(output)
	return []byte(xmlContent), nil
}

func WriteToFile(doc FCPXML, outputPath string) error {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal FCPXML: %w", err)
	}
	return os.WriteFile(outputPath, data, 0644)
}

func ParseFCPXML(filePath string) (*FCPXML, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var fcpxml FCPXML
	err = xml.Unmarshal(data, &fcpxml)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	return &fcpxml, nil
}
