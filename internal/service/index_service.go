package service

import (
	"context"
	"fmt"
	"time"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/repository/contract"
	"hr-chatbot-be/pkg/utils"
)

// PolicyIndexModelTag marks the index as plain paragraph chunks; no
// embedding model is involved yet.
const PolicyIndexModelTag = "simple-text-chunks"

type IIndexService interface {
	// Reindex rebuilds policy.index.json from the raw policy text.
	Reindex(ctx context.Context) (*dto.ReindexResponse, error)
}

type indexService struct {
	indexRepo contract.PolicyIndexRepository
}

func NewIndexService(indexRepo contract.PolicyIndexRepository) IIndexService {
	return &indexService{indexRepo: indexRepo}
}

func (is *indexService) Reindex(ctx context.Context) (*dto.ReindexResponse, error) {
	policyText, err := is.indexRepo.ReadSource(ctx)
	if err != nil {
		return nil, err
	}

	paragraphs := utils.SplitParagraphs(policyText)

	chunks := make([]entity.PolicyChunk, len(paragraphs))
	for i, text := range paragraphs {
		chunks[i] = entity.PolicyChunk{
			Id:        fmt.Sprintf("p%d", i+1),
			Text:      text,
			Embedding: []float64{},
		}
	}

	index := entity.PolicyIndex{
		Model:     PolicyIndexModelTag,
		Dim:       0,
		Chunks:    chunks,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := is.indexRepo.Save(ctx, &index); err != nil {
		return nil, err
	}

	return &dto.ReindexResponse{
		Message:     "Policy index updated successfully",
		ChunksCount: len(chunks),
	}, nil
}
