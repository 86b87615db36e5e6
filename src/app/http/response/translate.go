package response

import "forumapi/src/core/domain"

// messages maps validation codes to the text shown to API clients.
var messages = map[string]string{
	"NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":      "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
	"NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat membuat thread baru karena tipe data tidak sesuai",
	"NEW_THREAD.TITLE_LIMIT_CHAR":                 "tidak dapat membuat thread baru karena karakter judul melebihi batas limit",

	"NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":      "tidak dapat membuat comment baru karena properti yang dibutuhkan tidak ada",
	"NEW_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat membuat comment baru karena tipe data tidak sesuai",
	"NEW_COMMENT.NOT_BE_EMPTY_STRING":              "tidak dapat membuat comment baru karena komentar tidak boleh kosong",
}

// Translate returns the client message for a validation error,
// falling back to the error's own message for unknown codes.
func Translate(err *domain.DomainError) string {
	if msg, ok := messages[err.Code]; ok {
		return msg
	}
	return err.Message
}
