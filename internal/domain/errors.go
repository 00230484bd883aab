package domain

import "errors"

var (
	// ErrEmptyQuestionSet is returned when a session is built from a questionnaire with no questions.
	ErrEmptyQuestionSet = errors.New("questionnaire has no questions")
	// ErrQuestionNotFound indicates a question ID that is not part of the questionnaire.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrQuestionNotCurrent indicates an answer for a question other than the one being shown.
	ErrQuestionNotCurrent = errors.New("question is not the current question")
	// ErrInvalidOption indicates a value outside the question's option set.
	ErrInvalidOption = errors.New("option not valid for question")
	// ErrNotAnswered is returned when advancing past an unanswered question.
	ErrNotAnswered = errors.New("current question not answered")
	// ErrNoPreviousQuestion is returned when retreating from the first question.
	ErrNoPreviousQuestion = errors.New("already at first question")
	// ErrAlreadySubmitted is returned when mutating a session whose lead was accepted.
	ErrAlreadySubmitted = errors.New("assessment already submitted")
	// ErrIncomplete is returned when completion is required and questions remain unanswered.
	ErrIncomplete = errors.New("assessment not complete")
	// ErrInvalidIdentity indicates missing or malformed contact details.
	ErrInvalidIdentity = errors.New("invalid identity")
	// ErrSubmissionFailed wraps any failure from the lead submission backend.
	ErrSubmissionFailed = errors.New("submission failed")
	// ErrSessionNotFound is returned when an assessment session does not exist or expired.
	ErrSessionNotFound = errors.New("assessment session not found")
	// ErrQuestionnaireNotFound indicates the questionnaire content could not be loaded.
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")
	// ErrInvalidSnapshot indicates a stored session that no longer matches its questionnaire.
	ErrInvalidSnapshot = errors.New("session snapshot does not match questionnaire")
)
