package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// TeacherSessionKey returns the cache key for a teacher's bearer session JTI.
func (r *CacheKeyStruct) TeacherSessionKey(teacherID int, jti string) string {
	return fmt.Sprintf("session:%d:%s", teacherID, jti)
}

// StudyYearListKey returns the cache key for the study year list payload.
func (r *CacheKeyStruct) StudyYearListKey() string {
	return "ref:study_years"
}

// SubjectListKey returns the cache key for the subject list payload.
func (r *CacheKeyStruct) SubjectListKey() string {
	return "ref:subjects"
}

// StudentClassListKey returns the cache key for the class list payload.
func (r *CacheKeyStruct) StudentClassListKey() string {
	return "ref:student_classes"
}

// SchoolListKey returns the cache key for the school list payload.
func (r *CacheKeyStruct) SchoolListKey() string {
	return "ref:schools"
}

var CacheKey = NewCacheKeyStruct()
