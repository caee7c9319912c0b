package trivia

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	quizOutcomeServed    = "served"
	quizOutcomeExhausted = "exhausted"
)

var (
	quizOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "quiz_questions_total",
		Help:      "Quiz next-question requests by outcome.",
	}, []string{"outcome"})

	questionMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "question_mutations_total",
		Help:      "Questions created or deleted.",
	}, []string{"op"})
)
