package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"medequip-system/internal/entities"
	"medequip-system/internal/repositories"
	"medequip-system/pkg/utils"
)

const localeDateLayout = "02/01/2006"

var nonWeightChars = regexp.MustCompile(`[^\d.,]`)

type ImportResult struct {
	Imported int
	Skipped  int
	Failed   int
}

// EquipmentImportService loads equipment rows from a semicolon-delimited
// CSV or an XLSX sheet. Owners and types are referenced by name; rows with
// unknown names are skipped with a warning, never aborting the batch.
type EquipmentImportService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	userRepository      repositories.UserRepositoryInterface
	typeRepository      repositories.EquipmentTypeRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentImportService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	userRepository repositories.UserRepositoryInterface,
	typeRepository repositories.EquipmentTypeRepositoryInterface,
	logger *zap.Logger,
) *EquipmentImportService {
	return &EquipmentImportService{
		equipmentRepository: equipmentRepository,
		userRepository:      userRepository,
		typeRepository:      typeRepository,
		logger:              logger,
	}
}

func (s *EquipmentImportService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported import format: %s", path)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("import file has no data rows: %s", path)
	}

	return s.importRows(ctx, rows[0], rows[1:]), nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		// Files exported on Windows tend to start with a BOM.
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\uFEFF")
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets: %s", path)
	}
	return f.GetRows(sheets[0])
}

func (s *EquipmentImportService) importRows(ctx context.Context, header []string, rows [][]string) *ImportResult {
	col := headerIndex(header)
	result := &ImportResult{}

	for i, row := range rows {
		lineNum := i + 2

		userName := cell(row, col, "userid")
		typeName := cell(row, col, "typeid")
		if userName == "" || typeName == "" {
			s.logger.Warn("import: row without owner or type, skipped", zap.Int("line", lineNum))
			result.Skipped++
			continue
		}

		user, err := s.userRepository.FindByName(ctx, userName)
		if err != nil {
			s.logger.Warn("import: unknown user, row skipped",
				zap.Int("line", lineNum), zap.String("user", userName))
			result.Skipped++
			continue
		}

		equipmentType, err := s.typeRepository.FindByName(ctx, typeName)
		if err != nil {
			s.logger.Warn("import: unknown equipment type, row skipped",
				zap.Int("line", lineNum), zap.String("type", typeName))
			result.Skipped++
			continue
		}

		weight := cell(row, col, "weight")
		if weight == "" {
			weight = cell(row, col, "poids")
		}

		entity := entities.Equipment{
			TypeID:       equipmentType.ID,
			Reference:    utils.NormalizeOptional(null.StringFrom(cell(row, col, "reference"))),
			Sector:       cell(row, col, "sector"),
			Room:         cell(row, col, "room"),
			Resident:     cell(row, col, "resident"),
			Weight:       ParseLocaleWeight(weight),
			DeliveryDate: ParseLocaleDate(cell(row, col, "deliverydate")),
			ReturnDate:   ParseLocaleDate(cell(row, col, "returndate")),
			UserID:       user.ID,
		}

		if _, err := s.equipmentRepository.CreateEquipment(ctx, entity); err != nil {
			s.logger.Error("import: insert failed", zap.Int("line", lineNum), zap.Error(err))
			result.Failed++
			continue
		}
		result.Imported++
	}

	s.logger.Info("import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)
	return result
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}

func cell(row []string, col map[string]int, name string) string {
	idx, ok := col[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ParseLocaleDate parses DD/MM/YYYY. Dates that do not exist on the
// calendar (31/02/2023) come back null rather than erroring the row.
func ParseLocaleDate(s string) null.Time {
	if s == "" {
		return null.Time{}
	}
	t, err := time.Parse(localeDateLayout, s)
	if err != nil {
		return null.Time{}
	}
	return null.TimeFrom(t)
}

// ParseLocaleWeight parses a weight that may use a decimal comma and may
// carry a unit suffix. Unparseable values come back null.
func ParseLocaleWeight(s string) null.Float64 {
	if strings.TrimSpace(s) == "" {
		return null.Float64{}
	}

	clean := nonWeightChars.ReplaceAllString(s, "")
	clean = strings.ReplaceAll(clean, ",", ".")

	weight, err := strconv.ParseFloat(clean, 64)
	if err != nil || weight < 0 {
		return null.Float64{}
	}
	return null.Float64From(weight)
}
