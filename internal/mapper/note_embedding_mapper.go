package mapper

import (
	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/repository/table"
	"semantic-notes-be/pkg/embedding"
	"semantic-notes-be/pkg/field"
)

// note.embedding column names.
const (
	ColEmbeddingNoteId = "note_id"
	ColEmbeddingModel  = "model"
	ColEmbeddingValue  = "embedding"
)

type NoteEmbeddingMapper struct{}

func NewNoteEmbeddingMapper() *NoteEmbeddingMapper {
	return &NoteEmbeddingMapper{}
}

// ToFieldMap flattens an embedding row. The vector is stored in its
// bracketed text form; the server casts it to the vector type.
func (m *NoteEmbeddingMapper) ToFieldMap(e entity.NoteEmbedding) *field.Map {
	fm := field.NewMap()
	fm.Put(ColEmbeddingNoteId, field.Of(e.NoteId))
	fm.Put(ColEmbeddingModel, e.Model)

	switch {
	case e.Embedding.IsSet():
		fm.Put(ColEmbeddingValue, field.Of(embedding.VectorToString(e.Embedding.OrZero())))
	case e.Embedding.IsNull():
		fm.Put(ColEmbeddingValue, field.Null[string]())
	default:
		fm.Put(ColEmbeddingValue, field.Unset[string]())
	}
	return fm
}

// FromRow rebuilds an embedding entity, decoding the stored vector
// text. Decoding is idempotent: an already-decoded vector passes
// through unchanged.
func (m *NoteEmbeddingMapper) FromRow(row table.Row) (entity.NoteEmbedding, error) {
	e := entity.NoteEmbedding{
		NoteId: int64Field(row, ColEmbeddingNoteId).OrZero(),
		Model:  stringField(row, ColEmbeddingModel),
	}

	v, ok := row[ColEmbeddingValue]
	if !ok {
		e.Embedding = field.Unset[[]float32]()
		return e, nil
	}
	switch x := v.(type) {
	case nil:
		e.Embedding = field.Null[[]float32]()
	case []float32:
		e.Embedding = field.Of(x)
	case string:
		vec, err := embedding.StringToVector(x)
		if err != nil {
			return entity.NoteEmbedding{}, err
		}
		e.Embedding = field.Of(vec)
	case []byte:
		vec, err := embedding.StringToVector(string(x))
		if err != nil {
			return entity.NoteEmbedding{}, err
		}
		e.Embedding = field.Of(vec)
	default:
		e.Embedding = field.Null[[]float32]()
	}
	return e, nil
}
