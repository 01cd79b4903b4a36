// Package advisor отвечает на вопросы туристов о Камеруне, сопоставляя текст
// с упорядоченной таблицей правил по ключевым словам.
package advisor

import "strings"

// Rule связывает тему с наборами ключевых слов и готовым ответом.
//
// Правило срабатывает, если в тексте есть хотя бы одно слово из любой группы Any,
// либо все слова хотя бы одной группы All.
type Rule struct {
	Topic string
	Any   [][]string
	All   [][]string
	Reply string
}

// Answer - результат подбора ответа.
type Answer struct {
	Topic string `json:"topic"`
	Reply string `json:"reply"`
}

// FallbackTopic возвращается, если ни одно правило не сработало.
const FallbackTopic = "fallback"

// Responder проверяет правила по порядку; побеждает первое совпадение.
type Responder struct {
	rules    []Rule
	fallback string
}

// New создает Responder. Ключевые слова приводятся к нижнему регистру один раз.
func New(rules []Rule, fallback string) *Responder {
	prepped := make([]Rule, len(rules))
	for i, r := range rules {
		prepped[i] = Rule{
			Topic: r.Topic,
			Any:   lowerGroups(r.Any),
			All:   lowerGroups(r.All),
			Reply: r.Reply,
		}
	}
	return &Responder{rules: prepped, fallback: fallback}
}

// Default возвращает Responder со встроенными правилами.
func Default() *Responder {
	return New(DefaultRules(), FallbackReply)
}

// Respond подбирает ответ на сообщение.
func (r *Responder) Respond(text string) Answer {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return Answer{Topic: FallbackTopic, Reply: r.fallback}
	}
	for _, rule := range r.rules {
		if rule.matches(lower) {
			return Answer{Topic: rule.Topic, Reply: rule.Reply}
		}
	}
	return Answer{Topic: FallbackTopic, Reply: r.fallback}
}

// Reply возвращает только текст ответа.
func (r *Responder) Reply(text string) string {
	return r.Respond(text).Reply
}

// Topics возвращает темы в порядке проверки.
func (r *Responder) Topics() []string {
	topics := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		topics = append(topics, rule.Topic)
	}
	return topics
}

func (rule Rule) matches(text string) bool {
	for _, words := range rule.Any {
		if containsAny(text, words) {
			return true
		}
	}
	for _, words := range rule.All {
		if containsAll(text, words) {
			return true
		}
	}
	return false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// пустая группа совпадает с любым текстом
func containsAll(text string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

func lowerGroups(groups [][]string) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = make([]string, len(g))
		for j, w := range g {
			out[i][j] = strings.ToLower(w)
		}
	}
	return out
}
