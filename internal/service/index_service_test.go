package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hr-chatbot-be/internal/pkg/apperrors"
	"hr-chatbot-be/internal/repository/memory"
)

func TestReindexBuildsParagraphChunks(t *testing.T) {
	repo := memory.NewPolicyIndexRepository(
		"Chính sách nghỉ phép: 20 ngày mỗi năm.\n\nChính sách làm việc từ xa: tối đa 2 ngày mỗi tuần.",
	)
	svc := NewIndexService(repo)

	res, err := svc.Reindex(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, res.ChunksCount)
	assert.Equal(t, "Policy index updated successfully", res.Message)

	index, err := repo.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, PolicyIndexModelTag, index.Model)
	assert.Equal(t, 0, index.Dim)
	assert.Len(t, index.Chunks, 2)
	assert.Equal(t, "p1", index.Chunks[0].Id)
	assert.Equal(t, "p2", index.Chunks[1].Id)
	assert.Equal(t, "Chính sách nghỉ phép: 20 ngày mỗi năm.", index.Chunks[0].Text)
	assert.NotNil(t, index.Chunks[0].Embedding)
	assert.Empty(t, index.Chunks[0].Embedding)
	assert.NotEmpty(t, index.UpdatedAt)
}

func TestReindexMissingSource(t *testing.T) {
	svc := NewIndexService(memory.NewPolicyIndexRepository(""))

	_, err := svc.Reindex(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
