// Package dataset ships the interview-prep question sets used when no
// question database is configured.
package dataset

import "subject-quiz/internal/quiz"

const (
	SubjectDSA   = "DSA"
	SubjectDBMS  = "DBMS"
	SubjectOS    = "OS"
	SubjectCloud = "Cloud"
)

// Builtin returns the bundled subjects in menu order.
func Builtin() []quiz.Subject {
	return []quiz.Subject{
		{Name: SubjectDSA, Questions: dsaQuestions},
		{Name: SubjectDBMS, Questions: dbmsQuestions},
		{Name: SubjectOS, Questions: osQuestions},
		{Name: SubjectCloud, Questions: cloudQuestions},
	}
}

func NewBank() *quiz.Bank {
	return quiz.NewBank(Builtin()...)
}

var dsaQuestions = []quiz.Question{
	{
		ID:           "dsa-1",
		Prompt:       "What is the time complexity of binary search on a sorted array?",
		Options:      []string{"O(n)", "O(log n)", "O(n log n)", "O(1)"},
		CorrectIndex: 1,
		Explanation:  "Each comparison halves the remaining search range, so at most log2(n) steps are needed.",
	},
	{
		ID:           "dsa-2",
		Prompt:       "Which data structure follows the LIFO principle?",
		Options:      []string{"Stack", "Queue", "Heap", "Linked list"},
		CorrectIndex: 0,
		Explanation:  "A stack pops the most recently pushed element first: last in, first out.",
	},
	{
		ID:           "dsa-3",
		Prompt:       "Which traversal of a binary search tree visits keys in sorted order?",
		Options:      []string{"Pre-order", "Post-order", "In-order", "Level-order"},
		CorrectIndex: 2,
		Explanation:  "In-order visits left subtree, node, right subtree, which yields ascending keys in a BST.",
	},
	{
		ID:           "dsa-4",
		Prompt:       "What is the worst-case time complexity of quicksort?",
		Options:      []string{"O(n log n)", "O(n)", "O(log n)", "O(n^2)"},
		CorrectIndex: 3,
		Explanation:  "Consistently bad pivots (e.g. already sorted input with first-element pivot) degrade quicksort to quadratic time.",
	},
}

var dbmsQuestions = []quiz.Question{
	{
		ID:           "dbms-1",
		Prompt:       "Which normal form removes partial dependencies on a composite key?",
		Options:      []string{"1NF", "2NF", "3NF", "BCNF"},
		CorrectIndex: 1,
		Explanation:  "2NF requires every non-key attribute to depend on the whole candidate key, not just part of it.",
	},
	{
		ID:           "dbms-2",
		Prompt:       "What does the 'I' in ACID stand for?",
		Options:      []string{"Integrity", "Indexing", "Isolation", "Idempotence"},
		CorrectIndex: 2,
		Explanation:  "Isolation means concurrent transactions do not observe each other's intermediate state.",
	},
	{
		ID:           "dbms-3",
		Prompt:       "Which SQL clause filters groups after aggregation?",
		Options:      []string{"HAVING", "WHERE", "ORDER BY", "GROUP BY"},
		CorrectIndex: 0,
		Explanation:  "WHERE filters rows before grouping; HAVING filters the aggregated groups.",
	},
	{
		ID:           "dbms-4",
		Prompt:       "Which index structure do most relational databases use by default?",
		Options:      []string{"Hash table", "Bitmap", "Trie", "B+ tree"},
		CorrectIndex: 3,
		Explanation:  "B+ trees keep keys sorted and support both point lookups and range scans efficiently.",
	},
}

var osQuestions = []quiz.Question{
	{
		ID:           "os-1",
		Prompt:       "Which of these is NOT one of the Coffman conditions for deadlock?",
		Options:      []string{"Mutual exclusion", "Hold and wait", "Preemption", "Circular wait"},
		CorrectIndex: 2,
		Explanation:  "Deadlock requires no preemption; allowing resources to be preempted breaks the cycle.",
	},
	{
		ID:           "os-2",
		Prompt:       "What does a TLB cache?",
		Options:      []string{"Virtual-to-physical page translations", "Disk blocks", "Process control blocks", "File descriptors"},
		CorrectIndex: 0,
		Explanation:  "The translation lookaside buffer caches recent page table entries to speed up address translation.",
	},
	{
		ID:           "os-3",
		Prompt:       "Which scheduling algorithm can starve long jobs?",
		Options:      []string{"Round robin", "Shortest job first", "FCFS", "Lottery"},
		CorrectIndex: 1,
		Explanation:  "SJF keeps picking short jobs, so a long job may wait indefinitely if short ones keep arriving.",
	},
	{
		ID:           "os-4",
		Prompt:       "What is thrashing?",
		Options:      []string{"A CPU overheating", "Rapid context switching between threads", "A disk head crash", "Spending more time paging than executing"},
		CorrectIndex: 3,
		Explanation:  "When the working set exceeds physical memory the system constantly swaps pages and makes little progress.",
	},
}

var cloudQuestions = []quiz.Question{
	{
		ID:           "cloud-1",
		Prompt:       "Which service model gives you virtual machines but leaves the OS to you?",
		Options:      []string{"SaaS", "PaaS", "IaaS", "FaaS"},
		CorrectIndex: 2,
		Explanation:  "Infrastructure as a Service provides compute, storage and networking; you manage the OS and up.",
	},
	{
		ID:           "cloud-2",
		Prompt:       "What does horizontal scaling mean?",
		Options:      []string{"Adding more instances", "Adding more CPU to one instance", "Moving to a bigger region", "Compressing data"},
		CorrectIndex: 0,
		Explanation:  "Scaling out adds machines behind a load balancer instead of growing a single machine.",
	},
	{
		ID:           "cloud-3",
		Prompt:       "Which object storage guarantee lets a read right after a write see the new data?",
		Options:      []string{"Eventual consistency", "Read-after-write consistency", "Causal ordering", "Snapshot isolation"},
		CorrectIndex: 1,
		Explanation:  "Read-after-write consistency ensures a successful write is visible to subsequent reads.",
	},
	{
		ID:           "cloud-4",
		Prompt:       "What is the main purpose of an availability zone?",
		Options:      []string{"Lower egress prices", "Regulatory compliance", "Faster DNS", "Fault isolation within a region"},
		CorrectIndex: 3,
		Explanation:  "Zones are physically separate data centers so a failure in one does not take down the others.",
	},
}
