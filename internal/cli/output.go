package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			fmt.Println(idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns it wrapped with the matching exit code
func (f *OutputFormatter) Fail(err error) error {
	code, errCode := CodeFor(err)
	return f.FailWith(code, errCode, err, "")
}

// FailWith reports err under an explicit error code and returns it wrapped with exitCode
func (f *OutputFormatter) FailWith(exitCode int, errCode string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(errCode, err.Error(), suggestion); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return &CommandError{Code: exitCode, Err: err}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if s, ok := data.(fmt.Stringer); ok {
		_, err := io.WriteString(os.Stdout, s.String()+"\n")
		return err
	}
	fmt.Printf("%+v\n", data)
	return nil
}
