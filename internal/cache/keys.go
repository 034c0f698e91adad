package cache

import (
	"fmt"
	"strings"
)

// Key builders. Filter parameters are part of the key so each distinct list
// query caches independently; empty filters collapse to "all".

func BoardListKey() string {
	return keyPrefix + EntityBoards + ":all"
}

func ClassListKey(boardID string) string {
	return fmt.Sprintf("%s%s:board=%s", keyPrefix, EntityClasses, orAll(boardID))
}

func SubjectListKey(boardID, classID string) string {
	return fmt.Sprintf("%s%s:board=%s:class=%s", keyPrefix, EntitySubjects, orAll(boardID), orAll(classID))
}

func ChapterListKey(classID, subjectID string) string {
	return fmt.Sprintf("%s%s:class=%s:subject=%s", keyPrefix, EntityChapters, orAll(classID), orAll(subjectID))
}

func QuestionListKey(page, limit int, search, chapterID string, chapterIDs []string) string {
	return fmt.Sprintf("%s%s:page=%d:limit=%d:search=%s:chapter=%s:chapters=%s",
		keyPrefix, EntityQuestions, page, limit,
		strings.ToLower(search), orAll(chapterID), orAll(strings.Join(chapterIDs, ",")))
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}
