package constant

import "witt-interpreter-be/internal/entity"

const (
	FrameworkTransactional = "transactional"

	DefaultCollection = "second-brain-docs"

	PrimaryNamespace   = "witt-writings"
	SecondaryNamespace = "transactional"
)

var PrimaryTags = []string{"wittgenstein", "philosophy"}

var SecondaryTags = []string{"transaction-theory", "transaction", "transactions"}

// Frameworks is the canonical registry of interpretative lenses. Order here
// is the dispatch and display order.
var Frameworks = []entity.FrameworkInfo{
	{
		Id:              "early",
		Name:            "Early Wittgenstein",
		Description:     "Logical atomism from the Tractatus period",
		LongDescription: "The Early Wittgenstein is characterized by his work in the Tractatus Logico-Philosophicus, where he develops a picture theory of language and meaning. In this view, language has meaning by picturing states of affairs in the world, and philosophical problems arise from misunderstanding the logic of our language.",
		KeyAuthors: []entity.Author{
			{Name: "Elizabeth Anscombe", Description: "Anscombe was an influential philosopher and student of Wittgenstein who provided one of the first comprehensive interpretations of the Tractatus.", NotableWorks: []string{"An Introduction to Wittgenstein's Tractatus (1959)"}},
			{Name: "David Pears", Description: "Pears was a leading interpreter of Wittgenstein's early philosophy, focusing on the logical structure of the Tractatus.", NotableWorks: []string{"The False Prison: A Study of the Development of Wittgenstein's Philosophy (1987)"}},
		},
		KeyPublications: []entity.Publication{
			{Title: "Tractatus Logico-Philosophicus", Author: "Ludwig Wittgenstein", Year: "1921", Description: "Wittgenstein's first major work, presenting a logical-atomistic picture of language and reality."},
			{Title: "An Introduction to Wittgenstein's Tractatus", Author: "Elizabeth Anscombe", Year: "1959", Description: "A classic commentary on the Tractatus that helped establish its significance in analytic philosophy."},
		},
	},
	{
		Id:              "later",
		Name:            "Later Wittgenstein",
		Description:     "Language games and forms of life from Philosophical Investigations",
		LongDescription: "The Later Wittgenstein, primarily represented in the Philosophical Investigations, rejects many of his earlier views and develops concepts like \"language games,\" \"family resemblance,\" and \"forms of life.\" He views language as a diverse set of practices embedded in human activities rather than a logical picture of reality.",
		KeyAuthors: []entity.Author{
			{Name: "Peter Hacker", Description: "Hacker is among the most influential commentators on Wittgenstein's later philosophy, known for his detailed analytical commentary.", NotableWorks: []string{"Insight and Illusion (1972)", "Wittgenstein: Understanding and Meaning (1980)"}},
			{Name: "Gordon Baker", Description: "Baker collaborated with Hacker on extensive commentaries on Philosophical Investigations before developing his own therapeutic reading of Wittgenstein.", NotableWorks: []string{"Wittgenstein: Understanding and Meaning (1980)", "Wittgenstein's Method: Neglected Aspects (2004)"}},
		},
		KeyPublications: []entity.Publication{
			{Title: "Philosophical Investigations", Author: "Ludwig Wittgenstein", Year: "1953", Description: "Wittgenstein's second major work, published posthumously, presenting his mature philosophy of language."},
			{Title: "Wittgenstein: Understanding and Meaning", Author: "Gordon Baker and Peter Hacker", Year: "1980", Description: "First volume of the comprehensive analytical commentary on the Philosophical Investigations."},
		},
	},
	{
		Id:              "ordinary",
		Name:            "Ordinary Language",
		Description:     "Focus on everyday language use and dissolution of philosophical problems",
		LongDescription: "The Ordinary Language reading interprets Wittgenstein as showing how philosophical problems arise when we misuse everyday language or remove it from its practical contexts. This approach emphasizes returning words from their metaphysical to their everyday use to dissolve philosophical problems.",
		KeyAuthors: []entity.Author{
			{Name: "John Austin", Description: "Though not strictly a Wittgenstein scholar, Austin developed ordinary language philosophy in ways influenced by and parallel to Wittgenstein's later work.", NotableWorks: []string{"How to Do Things With Words (1962)"}},
			{Name: "Oswald Hanfling", Description: "Hanfling applied Wittgenstein's ordinary language approach to various philosophical problems.", NotableWorks: []string{"Wittgenstein's Later Philosophy (1989)"}},
		},
		KeyPublications: []entity.Publication{
			{Title: "The Blue and Brown Books", Author: "Ludwig Wittgenstein", Year: "1958", Description: "Preliminary studies for the Philosophical Investigations, showing Wittgenstein's transition to ordinary language philosophy."},
			{Title: "Philosophical Troubles: Collected Papers, Volume 1", Author: "Saul Kripke", Year: "2011", Description: "Contains influential papers on Wittgenstein's approach to rule-following and meaning."},
		},
	},
	{
		Id:              "therapeutic",
		Name:            "Therapeutic Reading",
		Description:     "Philosophy as therapy for conceptual confusions",
		LongDescription: "The Therapeutic Reading sees Wittgenstein's work as primarily therapeutic rather than theoretical. It emphasizes his goal of treating philosophical problems like illnesses that need to be cured through clarity about language use. This reading is influenced by Wittgenstein's remark that \"there is not a philosophical method, though there are indeed methods, like different therapies.\"",
		KeyAuthors: []entity.Author{
			{Name: "Stanley Cavell", Description: "Cavell developed a distinctive reading of Wittgenstein that emphasizes the therapeutic and ethical dimensions of his philosophy.", NotableWorks: []string{"The Claim of Reason (1979)", "Must We Mean What We Say? (1969)"}},
			{Name: "Gordon Baker", Description: "In his later work, Baker developed an influential therapeutic reading of Wittgenstein that departed from his earlier analytical approach.", NotableWorks: []string{"Wittgenstein's Method: Neglected Aspects (2004)"}},
		},
		KeyPublications: []entity.Publication{
			{Title: "The Claim of Reason", Author: "Stanley Cavell", Year: "1979", Description: "A landmark work applying Wittgenstein's philosophy to skepticism, ethics, and aesthetics."},
			{Title: "Wittgenstein's Method: Neglected Aspects", Author: "Gordon Baker", Year: "2004", Description: "A collection of essays presenting Baker's therapeutic reading of Wittgenstein's philosophy."},
		},
	},
	{
		Id:              "resolute",
		Name:            "Resolute Reading",
		Description:     "Emphasis on nonsense and the ladder metaphor",
		LongDescription: "The Resolute Reading, also known as the \"New Wittgenstein,\" argues that both early and late Wittgenstein aimed to show that philosophical statements are not false but nonsensical. It takes seriously Wittgenstein's ladder metaphor, suggesting we must throw away the ladder of the Tractatus after climbing it, recognizing its propositions as nonsense.",
		KeyAuthors: []entity.Author{
			{Name: "Cora Diamond", Description: "Diamond is a key proponent of the resolute reading, arguing that Wittgenstein intended readers to recognize the Tractatus itself as nonsensical.", NotableWorks: []string{"The Realistic Spirit (1991)", "Reading Wittgenstein with Anscombe, Going On to Ethics (2019)"}},
			{Name: "James Conant", Description: "Conant, often working with Diamond, developed the resolute reading approach to both early and later Wittgenstein.", NotableWorks: []string{"The Method of the Tractatus (2000)", "Elucidation and Nonsense in Frege and Early Wittgenstein (2000)"}},
		},
		KeyPublications: []entity.Publication{
			{Title: "The New Wittgenstein", Author: "Alice Crary and Rupert Read (eds.)", Year: "2000", Description: "A collection of essays presenting the resolute reading approach to Wittgenstein's philosophy."},
			{Title: "The Realistic Spirit", Author: "Cora Diamond", Year: "1991", Description: "Essays developing a resolute reading of Wittgenstein that emphasizes the ethical dimensions of his work."},
		},
	},
	{
		Id:              "pragmatic",
		Name:            "Pragmatic Reading",
		Description:     "Focus on language as a tool for practical purposes",
		LongDescription: "The Pragmatic Reading interprets Wittgenstein's philosophy as emphasizing the practical utility of language. This view sees Wittgenstein as highlighting how language functions as a tool within specific contexts and practices, with meaning emerging from its practical use rather than from abstract reference. It connects Wittgenstein's ideas to the American pragmatist tradition.",
		KeyAuthors: []entity.Author{
			{Name: "Richard Rorty", Description: "Rorty drew connections between Wittgenstein's later philosophy and American pragmatism, emphasizing anti-foundationalism and the utility of language.", NotableWorks: []string{"Philosophy and the Mirror of Nature (1979)", "Contingency, Irony, and Solidarity (1989)"}},
			{Name: "Robert Brandom", Description: "Brandom developed a reading of Wittgenstein that emphasizes the normative and pragmatic aspects of language use.", NotableWorks: []string{"Making It Explicit (1994)", "Tales of the Mighty Dead (2002)"}},
		},
		KeyPublications: []entity.Publication{
			{Title: "Philosophy and the Mirror of Nature", Author: "Richard Rorty", Year: "1979", Description: "A seminal work that draws on Wittgenstein to challenge representationalist views of knowledge and language."},
			{Title: "Philosophical Investigations in Wittgenstein, Sellars, and Brandom", Author: "Jeremy Wanderer", Year: "2008", Description: "Explores connections between Wittgenstein's approach to language and pragmatist accounts."},
		},
	},
	{
		Id:              "contextualist",
		Name:            "Contextualist Reading",
		Description:     "Meaning determined by context and use",
		LongDescription: "The Contextualist Reading emphasizes Wittgenstein's insistence that the meaning of language is determined by its context of use. This approach sees Wittgenstein as highlighting how the same words can have different meanings in different contexts, challenging the view that words have fixed meanings. It connects to contemporary debates in epistemology and philosophy of language about context-sensitivity.",
		KeyAuthors: []entity.Author{
			{Name: "Charles Travis", Description: "Travis developed a Wittgensteinian approach to language that emphasizes occasion-sensitivity and the importance of context.", NotableWorks: []string{"Occasion-Sensitivity (2008)", "The Uses of Sense (1989)"}},
			{Name: "Avner Baz", Description: "Baz applies Wittgensteinian insights to problems in contemporary epistemology and philosophy of language.", NotableWorks: []string{"When Words Are Called For (2012)"}},
		},
		KeyPublications: []entity.Publication{
			{Title: "Occasion-Sensitivity: Selected Essays", Author: "Charles Travis", Year: "2008", Description: "A collection of essays developing a contextualist reading of Wittgenstein and applying it to contemporary problems."},
			{Title: "When Words Are Called For", Author: "Avner Baz", Year: "2012", Description: "Applies Wittgensteinian contextualism to critiques of contemporary philosophy of language."},
		},
	},
	{
		Id:              "naturalistic",
		Name:            "Naturalistic Reading",
		Description:     "Connection to empirical psychology and natural science",
		LongDescription: "The Naturalistic Reading interprets Wittgenstein's philosophy as compatible with, or even anticipating, approaches in cognitive science and empirical psychology. While Wittgenstein was often critical of scientific approaches to philosophical problems, this reading suggests his insights about language, rule-following, and mind can inform and be informed by natural scientific research.",
		KeyAuthors: []entity.Author{
			{Name: "P.M.S. Hacker", Description: "While critical of some naturalistic approaches, Hacker has explored connections between Wittgenstein's philosophy and topics in neuroscience and cognitive psychology.", NotableWorks: []string{"Philosophical Foundations of Neuroscience (2003, with M.R. Bennett)", "Human Nature: The Categorical Framework (2007)"}},
			{Name: "Danièle Moyal-Sharrock", Description: "Moyal-Sharrock has explored naturalistic themes in Wittgenstein's later work, particularly On Certainty.", NotableWorks: []string{"Understanding Wittgenstein's On Certainty (2004)", "The Third Wittgenstein (2004)"}},
		},
		KeyPublications: []entity.Publication{
			{Title: "Philosophical Foundations of Neuroscience", Author: "M.R. Bennett and P.M.S. Hacker", Year: "2003", Description: "Applies Wittgensteinian conceptual analysis to contemporary neuroscience."},
			{Title: "The Third Wittgenstein: The Post-Investigations Works", Author: "Danièle Moyal-Sharrock (ed.)", Year: "2004", Description: "Explores Wittgenstein's later writings with attention to naturalistic themes."},
		},
	},
	{
		Id:              "post-analytic",
		Name:            "Post-Analytic Reading",
		Description:     "Connecting Wittgenstein to continental philosophy",
		LongDescription: "The Post-Analytic Reading interprets Wittgenstein as bridging the divide between analytic and continental philosophy. This approach draws connections between Wittgenstein's work and themes in phenomenology, hermeneutics, critical theory, and poststructuralism. It emphasizes aspects of Wittgenstein's thought that exceed narrowly logical or linguistic concerns, such as his interest in practices, forms of life, and the limits of philosophy.",
		KeyAuthors: []entity.Author{
			{Name: "Richard Rorty", Description: "Rorty positioned Wittgenstein as a post-metaphysical thinker who helped move philosophy beyond traditional analytic concerns.", NotableWorks: []string{"Contingency, Irony, and Solidarity (1989)", "Essays on Heidegger and Others (1991)"}},
			{Name: "Stanley Cavell", Description: "Cavell developed readings of Wittgenstein that engage deeply with literature, film, and continental thought.", NotableWorks: []string{"The Claim of Reason (1979)", "This New Yet Unapproachable America (1989)"}},
		},
		KeyPublications: []entity.Publication{
			{Title: "The New Wittgenstein", Author: "Alice Crary and Rupert Read (eds.)", Year: "2000", Description: "Contains essays that connect Wittgenstein to post-analytic approaches."},
			{Title: "The Claim of Reason", Author: "Stanley Cavell", Year: "1979", Description: "A landmark work that bridges Wittgensteinian philosophy with broader cultural and continental concerns."},
		},
	},
	{
		Id:              "ethical",
		Name:            "Ethical Reading",
		Description:     "Centrality of ethics and the mystical in Wittgenstein's thought",
		LongDescription: "The Ethical Reading emphasizes the centrality of ethics and the mystical in Wittgenstein's philosophy, despite his limited explicit writing on ethics. This approach interprets his philosophical method as fundamentally ethical in purpose, aiming to help us see the world \"aright\" and achieve a kind of ethical clarity about our lives.",
		KeyAuthors: []entity.Author{
			{Name: "Cora Diamond", Description: "Diamond has emphasized the ethical dimensions of Wittgenstein's work, particularly in relation to the Tractatus.", NotableWorks: []string{"The Realistic Spirit (1991)", "Reading Wittgenstein with Anscombe, Going On to Ethics (2019)"}},
			{Name: "James Edwards", Description: "Edwards has developed ethical interpretations of Wittgenstein that emphasize the mystical dimensions of his thought.", NotableWorks: []string{"Ethics Without Philosophy: Wittgenstein and the Moral Life (1982)"}},
		},
		KeyPublications: []entity.Publication{
			{Title: "Ethics Without Philosophy: Wittgenstein and the Moral Life", Author: "James Edwards", Year: "1982", Description: "A pioneering study of the ethical dimensions of Wittgenstein's philosophy."},
			{Title: "Reading Wittgenstein with Anscombe, Going On to Ethics", Author: "Cora Diamond", Year: "2019", Description: "A recent work exploring the ethical implications of Wittgenstein's philosophy."},
		},
	},
	{
		Id:              "metaphysical",
		Name:            "Metaphysical Reading",
		Description:     "Extracting positive philosophical theses from Wittgenstein's work",
		LongDescription: "The Metaphysical Reading interprets Wittgenstein as offering positive philosophical theses about the nature of reality, language, and mind, despite his disavowal of theory-building. This approach is more common in interpretations of the Tractatus but can also be applied to later works like Philosophical Investigations.",
		KeyAuthors: []entity.Author{
			{Name: "Peter Hacker", Description: "While not strictly advocating a metaphysical reading, Hacker's analytical approach extracts systematic philosophical positions from Wittgenstein's work.", NotableWorks: []string{"Insight and Illusion (1972)", "Wittgenstein: Meaning and Mind (1990)"}},
			{Name: "David Pears", Description: "Pears developed interpretations of Wittgenstein that emphasize the philosophical content and implications of his work.", NotableWorks: []string{"The False Prison (1987-1988)"}},
		},
		KeyPublications: []entity.Publication{
			{Title: "The False Prison: A Study of the Development of Wittgenstein's Philosophy", Author: "David Pears", Year: "1987-1988", Description: "A two-volume work examining the development of Wittgenstein's thought with attention to its philosophical content."},
			{Title: "Wittgenstein: Rules, Grammar and Necessity", Author: "Gordon Baker and Peter Hacker", Year: "1985", Description: "Second volume of the analytical commentary that systematizes Wittgenstein's views on rules and grammar."},
		},
	},
	{
		Id:              "pyrrhonian",
		Name:            "Pyrrhonian Reading",
		Description:     "Wittgenstein as a skeptic in the ancient tradition",
		LongDescription: "The Pyrrhonian Reading interprets Wittgenstein as a philosophical skeptic in the tradition of ancient Pyrrhonism. This view sees him as suspending judgment about philosophical problems rather than solving them, aiming for a kind of peace of mind (ataraxia) that comes from recognizing the limits of philosophical reasoning.",
		KeyAuthors: []entity.Author{
			{Name: "Robert Fogelin", Description: "Fogelin is the primary advocate of the Pyrrhonian reading, seeing Wittgenstein's approach as similar to ancient skepticism.", NotableWorks: []string{"Wittgenstein (1976)", "Taking Wittgenstein at His Word (2009)"}},
			{Name: "Duncan Pritchard", Description: "Pritchard has explored connections between Wittgenstein's On Certainty and Pyrrhonian skepticism.", NotableWorks: []string{"Wittgenstein on Skepticism (2011)"}},
		},
		KeyPublications: []entity.Publication{
			{Title: "Taking Wittgenstein at His Word: A Textual Study", Author: "Robert Fogelin", Year: "2009", Description: "A detailed argument for the Pyrrhonian interpretation of Wittgenstein's philosophy."},
			{Title: "Wittgenstein", Author: "Robert Fogelin", Year: "1976", Description: "An influential study presenting Wittgenstein as a neo-Pyrrhonian skeptic."},
		},
	},
	{
		Id:              "transcendental",
		Name:            "Transcendental Reading",
		Description:     "Focusing on the conditions for the possibility of meaning",
		LongDescription: "The Transcendental Reading interprets Wittgenstein as investigating the necessary conditions for the possibility of meaning and sense, similar to Kant's transcendental philosophy. This approach sees him as revealing the logical or grammatical structures that make language and thought possible.",
		KeyAuthors: []entity.Author{
			{Name: "A.C. Grayling", Description: "Grayling has developed interpretations of Wittgenstein that emphasize transcendental aspects of his philosophy.", NotableWorks: []string{"Wittgenstein: A Very Short Introduction (1988)"}},
			{Name: "Bernard Williams", Description: "Williams explored transcendental themes in Wittgenstein's approach to certainty and knowledge.", NotableWorks: []string{"Wittgenstein and Idealism (1973)"}},
		},
		KeyPublications: []entity.Publication{
			{Title: "Wittgenstein: A Very Short Introduction", Author: "A.C. Grayling", Year: "1988", Description: "A concise introduction that highlights transcendental aspects of Wittgenstein's philosophy."},
			{Title: "Wittgenstein and Idealism", Author: "Bernard Williams", Year: "1973", Description: "An influential essay examining transcendental themes in Wittgenstein's philosophy."},
		},
	},
	{
		Id:              FrameworkTransactional,
		Name:            "Transaction Theory",
		Description:     "Understanding meaning creation through transaction processes",
		LongDescription: "Transaction Theory draws on Wittgenstein's later philosophy to understand how meaning emerges through transactional processes between agents and their environments. This approach emphasizes the dynamic, contextual, and social nature of meaning-making, seeing linguistic meaning as arising from interactions rather than from static representations or rules. It connects Wittgenstein's insights to contemporary work in enactive and embodied cognition.",
		KeyAuthors: []entity.Author{
			{Name: "John Dewey", Description: "Though predating Wittgenstein's later work, Dewey's transactional approach to experience shares important themes with Wittgenstein's philosophy.", NotableWorks: []string{"Experience and Nature (1925)", "Knowing and the Known (1949, with Arthur Bentley)"}},
			{Name: "Roger Hunt", Description: "A recent transactionalist depiction of Wittgenstein's philosophy.", NotableWorks: []string{"The Language of Transaction: A Perspective on Wittgenstein (2025)"}},
		},
		KeyPublications: []entity.Publication{
			{Title: "Knowing and the Known", Author: "John Dewey and Arthur Bentley", Year: "1949", Description: "A foundational work in transaction theory that shares themes with Wittgenstein's later philosophy."},
			{Title: "The Embodied Mind", Author: "Francisco Varela, Evan Thompson, and Eleanor Rosch", Year: "1991", Description: "Connects enactive approaches to cognition with Wittgensteinian themes about language and meaning."},
		},
	},
}

// FrameworkById returns the registry entry for an id, or nil.
func FrameworkById(id string) *entity.FrameworkInfo {
	for i := range Frameworks {
		if Frameworks[i].Id == id {
			return &Frameworks[i]
		}
	}
	return nil
}
