package hunt

// DefaultCatalog returns the CodeHunt 2026 phase content. The engine only
// ever sees the Catalog value, so an event with different content swaps
// this out without touching any scoring logic.
func DefaultCatalog() *Catalog {
	return &Catalog{
		PromptKeyword: "VU2050",
		Themes: []string{
			"AI in Healthcare",
			"Generative AI & Creativity",
			"Computer Science Fundamentals",
			"AI in Education & Learning",
			"AI in Smart Cities",
		},
		Phase2Questions: []QuizQuestion{
			{
				ID:            1,
				Question:      "Which algorithm technique solves problems by breaking them into subproblems?",
				Options:       []string{"Divide and Conquer", "Random Search", "Greedy Avoidance", "Brute Force"},
				CorrectAnswer: 0,
			},
			{
				ID:            2,
				Question:      "Which data structure uses FIFO?",
				Options:       []string{"Heap", "Queue", "Graph", "Stack"},
				CorrectAnswer: 1,
			},
			{
				ID:            3,
				Question:      "What does CPU stand for?",
				Options:       []string{"Control Program Utility", "Computer Personal Unit", "Central Processing Unit", "Central Process Unit"},
				CorrectAnswer: 2,
			},
			{
				ID:            4,
				Question:      "Which sorting algorithm has average complexity O(n log n)?",
				Options:       []string{"Selection Sort", "Bubble Sort", "Insertion Sort", "Merge Sort"},
				CorrectAnswer: 3,
			},
			{
				ID:            5,
				Question:      "What is the binary representation of decimal 10?",
				Options:       []string{"1110", "1010", "1001", "1100"},
				CorrectAnswer: 1,
			},
			{
				ID:            6,
				Question:      "Which layer of the OSI model handles routing?",
				Options:       []string{"Network", "Transport", "Session", "Presentation"},
				CorrectAnswer: 0,
			},
			{
				ID:            7,
				Question:      "A primary key must be:",
				Options:       []string{"Repeated", "Optional", "Encrypted", "Unique"},
				CorrectAnswer: 3,
			},
			{
				ID:            8,
				Question:      "Which language is primarily used for web page structure?",
				Options:       []string{"Python", "C++", "HTML", "Java"},
				CorrectAnswer: 2,
			},
			{
				ID:            9,
				Question:      "What is recursion?",
				Options:       []string{"Memory deletion", "Parallel computing", "Loop unrolling", "Function calling itself"},
				CorrectAnswer: 3,
			},
			{
				ID:            10,
				Question:      "Which memory is volatile?",
				Options:       []string{"Hard Disk", "RAM", "SSD", "ROM"},
				CorrectAnswer: 1,
			},
		},
		Phase3MinScore: 3,
		Phase3Questions: []QuizQuestion{
			{
				ID: 1,
				Code: "#include <stdio.h>\nint main() {\n    int i, sum = 0;\n    for (i = 1; i <= 5; i++) {\n        if (i % 2 == 0)\n            continue;\n        sum += i;\n    }\n    printf(\"%d\", sum);\n    return 0;\n}",
				Question:      "What will be the output of this code?",
				Options:       []string{"6", "9", "15", "10"},
				CorrectAnswer: 1,
			},
			{
				ID: 2,
				Code: "#include <stdio.h>\nint main() {\n    int a = 5, b = 10;\n    int *p = &a, *q = &b;\n    *p = *q;\n    *q = a;\n    printf(\"%d %d\", a, b);\n    return 0;\n}",
				Question:      "What will be the output of this code?",
				Options:       []string{"5 10", "10 5", "10 10", "5 5"},
				CorrectAnswer: 2,
			},
			{
				ID: 3,
				Code: "#include <stdio.h>\nint fun(int n) {\n    if (n == 0)\n        return 0;\n    return n % 10 + fun(n / 10);\n}\nint main() {\n    printf(\"%d\", fun(1234));\n    return 0;\n}",
				Question:      "What will be the output of this code?",
				Options:       []string{"1234", "4321", "10", "24"},
				CorrectAnswer: 2,
			},
			{
				ID: 4,
				Code: "#include <stdio.h>\nint main() {\n    int arr[] = {1, 2, 3, 4, 5};\n    int *ptr = arr;\n    printf(\"%d \", *(ptr + 2));\n    ptr++;\n    printf(\"%d \", *(ptr + 2));\n    return 0;\n}",
				Question:      "What will be the output of this code?",
				Options:       []string{"2 4", "3 5", "3 4", "1 3"},
				CorrectAnswer: 1,
			},
			{
				ID: 5,
				Code: "#include <stdio.h>\nint main() {\n    int x = 1;\n    switch (x) {\n        case 1: printf(\"A\");\n        case 2: printf(\"B\");\n        case 3: printf(\"C\");\n                break;\n        default: printf(\"D\");\n    }\n    return 0;\n}",
				Question:      "What will be the output of this code?",
				Options:       []string{"A", "AB", "ABC", "ABCD"},
				CorrectAnswer: 2,
			},
		},
		Phase4: DebugChallenge{
			Code: `#include <stdio.h>

int main() {
    int arr[5] = {10, 20, 30, 40, 50};
    int *ptr = arr;
    int sum = 0, i;

    for (i = 0; i < 5; i++) {
        if (i % 2 = 0) {
            sum += *(ptr + i)
        }
    }

    print("Sum of even-indexed: %d", sum);
    retrun 0;
}`,
			Answer:        "sum of even-indexed: 90",
			NumericAnswer: "90",
			NextLocation:  "2012",
			Hints: []string{
				"Look carefully at the if condition - is '=' used for comparison?",
				"Check for missing semicolons inside the loop body",
				"Are 'print' and 'retrun' valid C keywords?",
				"Even-indexed elements are arr[0], arr[2], arr[4] = 10, 30, 50",
			},
		},
		Phase5Riddles: []Riddle{
			{
				ID:   1,
				Type: RiddleMCQ,
				Riddle: "Study the maze below and find the ONLY path from S (Start) to E (Exit). Walls (#) block movement. You can only move Right (→) or Down (↓).\n\n    C0  C1  C2  C3  C4  C5\nR0: [S] [.] [#] [.] [.] [.]\nR1: [#] [.] [.] [.] [#] [.]\nR2: [#] [#] [#] [.] [.] [.]\nR3: [.] [.] [#] [#] [#] [.]\nR4: [#] [.] [.] [.] [#] [.]\nR5: [#] [#] [#] [.] [.] [E]\n\nWhich sequence of moves leads from S to E?",
				Options: []string{
					"→ ↓ → → ↓ ↓ → → ↓ ↓",
					"→ ↓ → → ↓ → → ↓ ↓ ↓",
					"→ ↓ → ↓ → → ↓ ↓ → ↓",
					"→ ↓ → → ↓ → ↓ → ↓ ↓",
				},
				CorrectAnswer: 1,
			},
			{
				ID:   2,
				Type: RiddleMCQ,
				Riddle: "LOGICAL DEDUCTION: Each CS Module is assigned exactly one function.\n\nCS Modules:\n  1. AlgoCore\n  2. DataNest\n  3. LogicFlow\n  4. ByteWorks\n\nFunctions:\n  A. Algorithms\n  B. Data Structures\n  C. Memory Management\n  D. Control Flow\n\nClues:\n  • DataNest (2) is assigned to Control Flow (D)\n  • AlgoCore (1) is assigned to Data Structures (B)\n  • ByteWorks (4) is NOT assigned to B or D\n  • LogicFlow (3) is assigned to Algorithms (A)\n\nWhat is the correct mapping?",
				Options: []string{
					"AlgoCore→A, DataNest→D, LogicFlow→B, ByteWorks→C",
					"AlgoCore→B, DataNest→D, LogicFlow→A, ByteWorks→C",
					"AlgoCore→B, DataNest→C, LogicFlow→A, ByteWorks→D",
					"AlgoCore→C, DataNest→D, LogicFlow→A, ByteWorks→B",
				},
				CorrectAnswer: 1,
			},
			{
				ID:   3,
				Type: RiddleText,
				Riddle: "PATTERN RECOGNITION\n\nStep 1 — Given Values:\n  A = 5,  B = 4,  C = 3,  D = 6\n\nStep 2 — Solve these expressions in order:\n  1) (3 × D) + 1\n  2) (4 × A)\n  3) (B − 3)\n  4) (2 × A) + 4\n  5) (C + 1)\n  6) (1 × A)\n  7) (1 × A)\n\nStep 3 — Convert each result to a letter using A1–Z26\n  (A=1, B=2, C=3 ... Z=26)\n\nWhat is the decoded keyword?",
				AcceptedAnswers: []string{"standee"},
			},
		},
	}
}
