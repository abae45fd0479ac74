package sheets

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	apperrors "github.com/rohankatakam/reporadar/internal/errors"
)

// clearRange wipes well past the widest table so shrinking result sets never
// leave stale columns behind.
const clearRange = "A:Z"

// Writer replaces the contents of one worksheet with a result table.
type Writer struct {
	svc           *gsheets.Service
	spreadsheetID string
	worksheet     string
	log           logrus.FieldLogger
}

// NewWriter authenticates against the Sheets API with a service-account
// credential blob.
func NewWriter(ctx context.Context, credentialsJSON []byte, spreadsheetID, worksheet string, log logrus.FieldLogger) (*Writer, error) {
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Writer{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
		log:           log,
	}, nil
}

// Replace clears the worksheet and writes the header row followed by one
// row per record, all values as raw text. A failure here is fatal for the
// run: a partial write leaves the sheet in an unknown state and must not be
// swallowed.
func (w *Writer) Replace(ctx context.Context, header []string, rows [][]string) error {
	_, err := w.svc.Spreadsheets.Values.
		Clear(w.spreadsheetID, w.worksheet+"!"+clearRange, &gsheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return apperrors.WriteError(err, "clear worksheet")
	}

	_, err = w.svc.Spreadsheets.Values.
		Update(w.spreadsheetID, w.worksheet+"!A1", BuildValues(header, rows)).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return apperrors.WriteError(err, "update worksheet")
	}

	w.log.WithFields(logrus.Fields{
		"worksheet": w.worksheet,
		"rows":      len(rows),
	}).Info("worksheet replaced")
	return nil
}

// BuildValues assembles the rectangular block the Sheets API expects: the
// header first, then one row per record.
func BuildValues(header []string, rows [][]string) *gsheets.ValueRange {
	values := make([][]interface{}, 0, len(rows)+1)

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	values = append(values, headerRow)

	for _, row := range rows {
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		values = append(values, cells)
	}

	return &gsheets.ValueRange{Values: values}
}
