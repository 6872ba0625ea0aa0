package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"masalog-backend/config"
	"masalog-backend/internal/dto"
	"masalog-backend/internal/model"
)

var (
	ErrExportInProgress = errors.New("an export is already in progress")
	ErrNoRecords        = errors.New("no records to export")
)

const exportSheet = "Sheet1"

// TempSuffix marks in-flight export files. The finished spreadsheet is
// written under this suffix first and renamed into place, so a failed
// export never leaves a partial file at the destination.
const TempSuffix = ".tmp"

// ExportService writes the current filtered sequence to an xlsx file under
// the configured export directory. One export at a time; a trigger while a
// previous export still runs is rejected.
type ExportService interface {
	Export(filename string) (dto.ExportResponse, error)
}

type exportService struct {
	view       LogViewService
	directory  string
	exportLock sync.Mutex
}

func NewExportService(cfg *config.Config, view LogViewService) ExportService {
	return &exportService{
		view:      view,
		directory: cfg.Export.Directory,
	}
}

func (s *exportService) Export(filename string) (dto.ExportResponse, error) {
	if !s.exportLock.TryLock() {
		log.Warn().Str("filename", filename).Msg("Export already in progress, rejecting trigger")
		return dto.ExportResponse{}, ErrExportInProgress
	}
	defer s.exportLock.Unlock()

	records := s.view.FilteredRecords()
	if len(records) == 0 {
		return dto.ExportResponse{}, ErrNoRecords
	}

	dest, err := s.destinationPath(filename)
	if err != nil {
		return dto.ExportResponse{}, err
	}

	startedAt := time.Now()
	if err := writeWorkbook(records, dest); err != nil {
		log.Error().Err(err).Str("path", dest).Msg("Export failed")
		return dto.ExportResponse{}, err
	}

	log.Info().
		Str("path", dest).
		Int("row_count", len(records)).
		Dur("elapsed", time.Since(startedAt)).
		Msg("Export finished")
	return dto.ExportResponse{Path: dest, RowCount: len(records)}, nil
}

func (s *exportService) destinationPath(filename string) (string, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid export filename %q", filename)
	}
	if !strings.HasSuffix(name, ".xlsx") {
		name += ".xlsx"
	}
	if err := os.MkdirAll(s.directory, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	return filepath.Join(s.directory, name), nil
}

// writeWorkbook builds the sheet and moves it into place atomically:
// write <dest>.tmp, then rename.
func writeWorkbook(records []model.LogRecord, dest string) error {
	f := excelize.NewFile()
	defer f.Close()

	header := exportColumns(records)
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, rec := range records {
		row := make([]interface{}, 0, len(header))
		row = append(row, rec.Timestamp, rec.IPAddress, rec.UserAgent)
		for _, key := range header[3:] {
			// Exported cells carry the decoded payload value; the raw otd
			// override is a display concern only.
			value, _ := rec.Fields.Get(key.(string))
			row = append(row, value)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	tempPath := dest + TempSuffix
	if err := f.SaveAs(tempPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to write export file: %w", err)
	}
	if err := os.Rename(tempPath, dest); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to move export file into place: %w", err)
	}
	return nil
}

// exportColumns is the header row: the fixed columns plus every post-params
// key, in first-seen order across the exported records.
func exportColumns(records []model.LogRecord) []interface{} {
	header := []interface{}{"timestamp", "ip_address", "user_agent"}
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, field := range rec.Fields {
			if seen[field.Key] {
				continue
			}
			seen[field.Key] = true
			header = append(header, field.Key)
		}
	}
	return header
}
