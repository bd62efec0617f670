package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"strings"

	"clinic-records/config"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/infrastructure/database"
	"clinic-records/internal/repository"

	"github.com/sirupsen/logrus"
)

// icd-import is a one-shot bulk loader for the ICD-10 reference relation.
// It reads a CSV with code and name columns and upserts each row, skipping
// duplicate codes silently.
func main() {
	csvPath := flag.String("csv", "icd10.csv", "path to the ICD-10 CSV file")
	flag.Parse()

	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.EnsureSchema(db); err != nil {
		logrus.Fatalf("Failed to ensure schema: %v", err)
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		logrus.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		logrus.Fatalf("Failed to read CSV header: %v", err)
	}

	codeIdx, nameIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "code":
			codeIdx = i
		case "name":
			nameIdx = i
		}
	}
	if codeIdx < 0 || nameIdx < 0 {
		logrus.Fatal("CSV header must contain code and name columns")
	}

	icdRepo := repository.NewICD10Repository()
	ctx := context.Background()
	imported := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logrus.Fatalf("Failed to read CSV record: %v", err)
		}

		code := strings.TrimSpace(record[codeIdx])
		name := strings.TrimSpace(record[nameIdx])
		if code == "" || name == "" {
			continue
		}

		if err := icdRepo.Upsert(ctx, db, &entity.ICD10Code{Code: code, Name: name}); err != nil {
			logrus.Fatalf("Failed to upsert code %s: %v", code, err)
		}
		imported++
	}

	logrus.Infof("ICD-10 import finished: %d rows processed", imported)
}
