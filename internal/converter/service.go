package converter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nconklindev/rowify/internal/download"
	"github.com/nconklindev/rowify/internal/form"
	"github.com/nconklindev/rowify/internal/tokenizer"
	"github.com/nconklindev/rowify/internal/types"

	"github.com/google/uuid"
)

// BuildTable puts header in the first row and one token per following row.
func BuildTable(header string, tokens []string) types.OutputTable {
	table := make(types.OutputTable, 0, len(tokens)+1)
	table = append(table, []string{header})
	for _, token := range tokens {
		table = append(table, []string{token})
	}
	return table
}

// Service runs a form submission end to end. It keeps no per-call state and
// can be shared between goroutines.
type Service struct {
	serializer Serializer
	sheetName  string
	logger     *slog.Logger
}

type Option func(*Service)

func WithSheetName(name string) Option {
	return func(s *Service) {
		s.sheetName = name
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func NewService(serializer Serializer, opts ...Option) *Service {
	s := &Service{
		serializer: serializer,
		sheetName:  DefaultSheet,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates st and, when valid, converts its input string into a
// workbook handed to d.
//
// Invalid input returns st with its errors set and a nil result. On success
// the returned state is empty. If serializing or downloading fails the
// validated state comes back unchanged together with the error.
func (s *Service) Submit(ctx context.Context, st form.State, d download.Downloader) (form.State, *types.ConversionResult, error) {
	st, ok := st.Validate()
	if !ok {
		s.logger.Debug("Form rejected", "fields", len(st.Errors))
		return st, nil, nil
	}

	in := st.Input
	tokens := tokenizer.Tokenize(in.InputString)
	table := BuildTable(in.Header, tokens)

	data, err := s.serializer.Serialize(table, s.sheetName)
	if err != nil {
		return st, nil, fmt.Errorf("serialize workbook: %w", err)
	}

	dest, err := d.Download(ctx, data, in.FileName)
	if err != nil {
		return st, nil, fmt.Errorf("download workbook: %w", err)
	}

	result := &types.ConversionResult{
		ID:          uuid.NewString(),
		FileName:    download.FileName(in.FileName),
		Header:      in.Header,
		Tokens:      len(tokens),
		Bytes:       len(data),
		Destination: dest,
	}

	s.logger.Info("Conversion complete",
		"id", result.ID,
		"file", result.FileName,
		"tokens", result.Tokens,
		"bytes", result.Bytes,
		"destination", result.Destination,
	)

	return form.Reset(), result, nil
}
