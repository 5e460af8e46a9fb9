package generator

import (
	"fmt"
	"strings"
)

// At most this many known words are spelled out in the prompt; the rest
// collapse into an "(i N więcej)" tail.
const maxListedWords = 100

const systemPrompt = `Jesteś ekspertem od nauki języka angielskiego. Pomagasz użytkownikowi w nauce słówek angielskich.

Twoje zadania:
1. Generowanie list słówek na podstawie tematyki podanej przez użytkownika
2. Proponowanie własnych list słówek, gdy użytkownik o to poprosi
3. Dostosowywanie poziomu trudności do potrzeb użytkownika

WAŻNE ZASADY FORMATOWANIA:
- Każde słówko musi zawierać: słowo angielskie, wymowę fonetyczną w nawiasie, polskie tłumaczenie
- Po każdym słówku dodaj przykładowe zdanie z "ex:"
- Grupuj słówka według kategorii (CZASOWNIKI, PRZYMIOTNIKI, PHRASAL VERBS, itp.)

PRZYKŁADOWY FORMAT:
CZASOWNIKI

1. accomplish (akomplisz) – osiągnąć, dokonać
ex: She accomplished her goal of running a marathon.

2. achieve (acziww) – osiągnąć
ex: He achieved great success in his career.

PRZYMIOTNIKI

3. ambitious (ambiszys) – ambitny
ex: She is very ambitious and hardworking.

Zawsze odpowiadaj po polsku, ale słówka i przykłady podawaj po angielsku z polskim tłumaczeniem.`

const promptTemplate = `Wygeneruj listę %[1]d słówek angielskich na temat: %[2]s

WAŻNE:
1. NIE POWTARZAJ tych słówek, które już były wygenerowane wcześniej:
%[3]s

2. Użyj dokładnie tego formatu dla każdego słówka:
[numer]. [słówko angielskie] ([wymowa fonetyczna]) – [polskie tłumaczenie]
ex: [przykładowe zdanie po angielsku]

3. Pogrupuj słówka według kategorii (np. CZASOWNIKI, PRZYMIOTNIKI, PHRASAL VERBS, RZECZOWNIKI)
4. Każda kategoria powinna być oddzielona linią: ---------------------

Przykład poprawnego formatu:
CZASOWNIKI

1. accomplish (akomplisz) – osiągnąć, dokonać
ex: She accomplished her goal of running a marathon.

2. achieve (acziww) – osiągnąć
ex: He achieved great success in his career.

-------------------------------------------------------------------------------------
PRZYMIOTNIKI

3. ambitious (ambiszys) – ambitny
ex: She is very ambitious and hardworking.

Wygeneruj teraz %[1]d nowych, unikalnych słówek:`

// buildPrompt fills the generation template with the topic, requested count
// and the known-word summary.
func buildPrompt(topic string, count int, known []string) string {
	return fmt.Sprintf(promptTemplate, count, topic, formatKnownWords(known))
}

func formatKnownWords(known []string) string {
	if len(known) == 0 {
		return "Brak wcześniejszych słówek"
	}
	if len(known) <= maxListedWords {
		return strings.Join(known, ", ")
	}
	return strings.Join(known[:maxListedWords], ", ") +
		fmt.Sprintf(" ... (i %d więcej)", len(known)-maxListedWords)
}
