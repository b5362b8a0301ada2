package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"search-funnel/domain/funnel"
	"search-funnel/domain/services"
	"search-funnel/pkg/config"
)

func geminiConfig(pad bool) config.GeminiConfig {
	return config.GeminiConfig{Timeout: 5 * time.Second, PadPhrases: pad}
}

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(parts, " ")
}

func TestGenerationService_PadsShortPhraseList(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateBlogContent", mock.Anything, "Budget Travel", "Travel").Return(&services.RawContent{
		Body:    words(140),
		Phrases: []string{"cheap flights to europe this summer", "hostel tips", "  "},
	}, nil)

	svc := NewGenerationService(gen, nil, geminiConfig(true))
	content, err := svc.GenerateContent(context.Background(), "Budget Travel", "Travel")

	require.NoError(t, err)
	assert.Equal(t, funnel.ContentWords, funnel.WordCount(content.Body))
	require.Len(t, content.Phrases, funnel.CandidatePhrases)
	assert.Equal(t, "cheap flights to europe this", content.Phrases[0].Text)
	assert.Equal(t, "hostel tips", content.Phrases[1].Text)
	assert.False(t, content.Phrases[1].Placeholder)
	assert.Equal(t, "Related search 3 for Budget Travel", content.Phrases[2].Text)
	assert.True(t, content.Phrases[5].Placeholder)
	assert.Empty(t, content.ImageURL)
}

func TestGenerationService_ShortfallWithoutPadding(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateBlogContent", mock.Anything, "Budget Travel", "").Return(&services.RawContent{
		Body:    words(100),
		Phrases: []string{"one", "two"},
	}, nil)

	svc := NewGenerationService(gen, nil, geminiConfig(false))
	_, err := svc.GenerateContent(context.Background(), "Budget Travel", "")

	var shortfall *services.PhraseShortfallError
	require.True(t, errors.As(err, &shortfall))
	assert.Equal(t, []string{"one", "two"}, shortfall.Got)
	assert.ErrorIs(t, err, services.ErrGenerationFailed)
}

func TestGenerationService_NoPhrasesIsAFailure(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateBlogContent", mock.Anything, "Title", "").Return(&services.RawContent{Body: words(100)}, nil)

	_, err := NewGenerationService(gen, nil, geminiConfig(true)).GenerateContent(context.Background(), "Title", "")
	assert.ErrorIs(t, err, services.ErrGenerationFailed)
}

func TestGenerationService_ContentStoresFeaturedImage(t *testing.T) {
	gen := new(MockGenerator)
	images := new(MockImageStore)
	phrases := []string{"a", "b", "c", "d", "e", "f"}

	gen.On("GenerateBlogContent", mock.Anything, "Title", "Cat").Return(&services.RawContent{Body: words(100), Phrases: phrases}, nil)
	gen.On("GenerateImage", mock.Anything, mock.Anything).Return([]byte{0x89, 'P', 'N', 'G'}, "image/png", nil)
	images.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "blogs/") && strings.HasSuffix(key, ".png")
	}), []byte{0x89, 'P', 'N', 'G'}, "image/png").Return("https://cdn.example.com/blogs/x.png", nil)

	content, err := NewGenerationService(gen, images, geminiConfig(true)).GenerateContent(context.Background(), "Title", "Cat")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/blogs/x.png", content.ImageURL)
	for _, p := range content.Phrases {
		assert.False(t, p.Placeholder)
	}
}

func TestGenerationService_WebResultsAreFilteredAndCapped(t *testing.T) {
	gen := new(MockGenerator)
	raw := []services.GeneratedWebResult{
		{Title: "", URL: "https://no-title.example.com"},
		{Title: "FTP", URL: "ftp://files.example.com"},
		{Title: "Relative", URL: "/relative"},
	}
	for i := 0; i < 8; i++ {
		raw = append(raw, services.GeneratedWebResult{Title: fmt.Sprintf(" Result %d ", i), URL: fmt.Sprintf("https://r%d.example.com", i)})
	}
	gen.On("GenerateWebResults", mock.Anything, "cheap flights").Return(raw, nil)

	results, err := NewGenerationService(gen, nil, geminiConfig(true)).GenerateWebResults(context.Background(), "cheap flights")

	require.NoError(t, err)
	require.Len(t, results, funnel.CandidateWebResults)
	assert.Equal(t, "Result 0", results[0].Title)
	assert.Equal(t, "https://r5.example.com", results[5].URL)
}

func TestGenerationService_GeneratorErrorIsWrapped(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GeneratePreLanding", mock.Anything, "Offer").Return(nil, errors.New("quota exceeded"))

	_, err := NewGenerationService(gen, nil, geminiConfig(true)).GeneratePreLanding(context.Background(), "Offer")
	assert.ErrorIs(t, err, services.ErrGenerationFailed)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerationService_Disabled(t *testing.T) {
	svc := NewGenerationService(nil, nil, geminiConfig(true))

	_, err := svc.Generate(context.Background(), services.GenerationRequest{Title: "x"})
	assert.ErrorIs(t, err, services.ErrGeneratorDisabled)

	_, err = svc.Generate(context.Background(), services.GenerationRequest{Mode: "poem"})
	assert.Error(t, err)
}
