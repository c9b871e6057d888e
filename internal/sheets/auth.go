package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// NewGoogleStoreFromCredentialsFile builds a GoogleStore authenticated with a
// service-account JSON key file. An empty path falls back to the
// GOOGLE_APPLICATION_CREDENTIALS environment variable.
func NewGoogleStoreFromCredentialsFile(ctx context.Context, spreadsheetID, jsonPath string) (*GoogleStore, error) {
	if jsonPath == "" {
		jsonPath = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if jsonPath == "" {
			return nil, fmt.Errorf("no credentials file path provided and GOOGLE_APPLICATION_CREDENTIALS not set")
		}
	}

	jsonData, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewGoogleStoreFromCredentialsJSON(ctx, spreadsheetID, jsonData)
}

// NewGoogleStoreFromCredentialsJSON builds a GoogleStore from raw
// service-account JSON key data.
func NewGoogleStoreFromCredentialsJSON(ctx context.Context, spreadsheetID string, jsonData []byte) (*GoogleStore, error) {
	creds, err := google.CredentialsFromJSON(ctx, jsonData, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	return NewGoogleStore(ctx, spreadsheetID, option.WithCredentials(creds))
}

// NewGoogleStoreWithDefaultCredentials builds a GoogleStore using Application
// Default Credentials (env var, gcloud auth, or GCE metadata, in that order).
func NewGoogleStoreWithDefaultCredentials(ctx context.Context, spreadsheetID string) (*GoogleStore, error) {
	tokenSource, err := google.DefaultTokenSource(ctx, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to get default token source: %w", err)
	}
	return NewGoogleStore(ctx, spreadsheetID, option.WithTokenSource(tokenSource))
}
