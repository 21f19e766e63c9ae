package memstore

import "aaai-platform/internal/domain/catalog"

func rupees(v int) *int { return &v }

var seedCourses = []catalog.Course{
	{
		ID:             "foundation",
		Title:          "Foundation Course",
		Description:    "Essential tools and mathematical foundations for AI/ML success",
		Category:       "Foundation",
		Difficulty:     "Beginner Level",
		Color:          "from-blue-500 to-blue-600",
		Icon:           "fas fa-foundation",
		EstimatedHours: 40,
		Price:          rupees(25000),
		Weeks:          "8-10 weeks",
		Modules: []catalog.Module{
			{ID: "linux-git", Title: "Linux & Git for Data Science", Completed: true},
			{ID: "python-foundations", Title: "Python Foundations & OOP", Completed: true},
			{ID: "data-handling", Title: "Data Handling (NumPy, Pandas)", Completed: true},
			{ID: "cloud-mlops", Title: "Cloud & MLOps Basics", Completed: false},
		},
		Prerequisites: nil,
		Technologies:  []string{"Python", "Linux", "Git", "Docker", "NumPy", "Pandas"},
	},
	{
		ID:             "machine-learning",
		Title:          "Machine Learning",
		Description:    "Classical ML algorithms, evaluation, and end-to-end projects",
		Category:       "Core",
		Difficulty:     "Intermediate Level",
		Color:          "from-green-500 to-green-600",
		Icon:           "fas fa-chart-line",
		EstimatedHours: 60,
		Price:          rupees(35000),
		Weeks:          "10-12 weeks",
		Modules: []catalog.Module{
			{ID: "ml-fundamentals", Title: "ML Fundamentals & Intelligent Systems", Completed: true},
			{ID: "end-to-end-ml", Title: "End-to-End ML Projects", Completed: true},
			{ID: "classification", Title: "Classification Techniques", Completed: false},
			{ID: "deployment", Title: "Deployment & Production", Completed: false},
		},
		Prerequisites: []string{"foundation"},
		Technologies:  []string{"Scikit-learn", "XGBoost", "MLflow", "FastAPI"},
	},
	{
		ID:             "deep-learning",
		Title:          "Deep Learning",
		Description:    "Neural networks, CNNs, RNNs, and modern architectures",
		Category:       "Advanced",
		Difficulty:     "Advanced Level",
		Color:          "from-purple-500 to-purple-600",
		Icon:           "fas fa-network-wired",
		EstimatedHours: 80,
		Price:          rupees(45000),
		Weeks:          "12-14 weeks",
		Modules: []catalog.Module{
			{ID: "neural-networks", Title: "Neural Network Foundations", Completed: false},
			{ID: "cnns", Title: "CNNs & Computer Vision", Completed: false},
			{ID: "rnns", Title: "RNNs & Sequence Models", Completed: false},
			{ID: "advanced-architectures", Title: "Advanced Architectures", Completed: false},
		},
		Prerequisites: []string{"machine-learning"},
		Technologies:  []string{"PyTorch", "TensorFlow", "OpenCV", "Transformers"},
	},
	{
		ID:             "generative-ai",
		Title:          "Generative AI",
		Description:    "GANs, VAEs, Diffusion Models",
		Category:       "GenAI",
		Difficulty:     "Advanced",
		Color:          "from-pink-500 to-pink-600",
		Icon:           "fas fa-magic",
		EstimatedHours: 70,
		Price:          rupees(42000),
		Weeks:          "10-12 weeks",
		Modules: []catalog.Module{
			{ID: "generative-models", Title: "Generative Model Foundations", Completed: false},
			{ID: "transfer-learning", Title: "Transfer Learning & Fine-tuning", Completed: false},
			{ID: "attention", Title: "Attention Mechanisms", Completed: false},
			{ID: "genai-deployment", Title: "GenAI Pipeline Deployment", Completed: false},
		},
		Prerequisites: []string{"deep-learning"},
		Technologies:  []string{"Diffusers", "Stable Diffusion", "GANs", "VAEs"},
	},
	{
		ID:             "llm",
		Title:          "Large Language Models",
		Description:    "GPT, BERT, Fine-tuning & Deployment",
		Category:       "LLM",
		Difficulty:     "Advanced",
		Color:          "from-indigo-500 to-indigo-600",
		Icon:           "fas fa-comments",
		EstimatedHours: 90,
		Price:          rupees(48000),
		Weeks:          "12-14 weeks",
		Modules: []catalog.Module{
			{ID: "llm-foundations", Title: "LLM Foundations & Architectures", Completed: false},
			{ID: "rag-langchain", Title: "RAG & LangChain Integration", Completed: false},
			{ID: "lora-finetuning", Title: "LoRA & QLoRA Fine-tuning", Completed: false},
			{ID: "specialized-llm", Title: "Specialized LLM Applications", Completed: false},
		},
		Prerequisites: []string{"generative-ai"},
		Technologies:  []string{"Transformers", "LangChain", "LoRA", "vLLM"},
	},
	{
		ID:             "multimodal-ai",
		Title:          "Multimodal AI",
		Description:    "Vision-Language Models & Fusion",
		Category:       "Multimodal",
		Difficulty:     "Expert",
		Color:          "from-teal-500 to-teal-600",
		Icon:           "fas fa-eye",
		EstimatedHours: 75,
		Price:          rupees(46000),
		Weeks:          "10-12 weeks",
		Modules: []catalog.Module{
			{ID: "multimodal-foundations", Title: "Multimodal Learning Foundations", Completed: false},
			{ID: "clip-blip", Title: "CLIP, BLIP & ViLBERT", Completed: false},
			{ID: "vision-language", Title: "Vision-Language Models", Completed: false},
			{ID: "multimodal-generation", Title: "Multimodal Generation", Completed: false},
		},
		Prerequisites: []string{"llm"},
		Technologies:  []string{"CLIP", "BLIP", "ViLBERT", "Whisper"},
	},
	{
		ID:             "quantum-ai",
		Title:          "Quantum AI",
		Description:    "Quantum Computing & Q-Transformers",
		Category:       "Quantum",
		Difficulty:     "Expert",
		Color:          "from-orange-500 to-orange-600",
		Icon:           "fas fa-atom",
		EstimatedHours: 85,
		Price:          rupees(50000),
		Weeks:          "12-14 weeks",
		Modules: []catalog.Module{
			{ID: "quantum-basics", Title: "Quantum Computing Basics", Completed: false},
			{ID: "quantum-ml", Title: "Quantum Machine Learning", Completed: false},
			{ID: "quantum-llm", Title: "Quantum LLMs & Attention", Completed: false},
			{ID: "quantum-agi", Title: "Quantum AGI Applications", Completed: false},
		},
		Prerequisites: []string{"multimodal-ai"},
		Technologies:  []string{"Qiskit", "PennyLane", "Cirq", "TensorFlow Quantum"},
	},
}

var seedProjects = []catalog.Project{
	{
		ID:           "python-data-pipeline",
		Title:        "Python Data Pipeline",
		Description:  "Complete ETL pipeline using Python, Pandas, and Docker for data preprocessing",
		Category:     "Foundation",
		Difficulty:   "Beginner",
		Technologies: []string{"Python", "Pandas", "Docker", "NumPy"},
		Features:     []string{"ETL pipeline", "Data validation", "Docker deployment"},
		DownloadURL:  "/api/projects/python-data-pipeline/download",
		ImageURL:     "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/python-data-pipeline",
	},
	{
		ID:           "linux-automation",
		Title:        "Linux Automation Scripts",
		Description:  "Collection of bash scripts for system monitoring and automation tasks",
		Category:     "Foundation",
		Difficulty:   "Beginner",
		Technologies: []string{"Bash", "Linux", "Cron", "Systemd"},
		Features:     []string{"System monitoring", "Automated backups", "Log analysis"},
		DownloadURL:  "/api/projects/linux-automation/download",
		ImageURL:     "https://images.unsplash.com/photo-1629654297299-c8506221ca97?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/linux-automation",
	},
	{
		ID:           "git-workflow-manager",
		Title:        "Git Workflow Manager",
		Description:  "Advanced Git workflows with CI/CD integration and automated testing",
		Category:     "Foundation",
		Difficulty:   "Intermediate",
		Technologies: []string{"Git", "GitHub Actions", "Docker", "pytest"},
		Features:     []string{"Branch protection", "Automated testing", "Deployment pipelines"},
		DownloadURL:  "/api/projects/git-workflow-manager/download",
		ImageURL:     "https://images.unsplash.com/photo-1556075798-4825dfaaf498?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/git-workflow-manager",
	},
	{
		ID:           "cloud-infrastructure",
		Title:        "Cloud Infrastructure Setup",
		Description:  "AWS/GCP infrastructure automation using Terraform and Kubernetes",
		Category:     "Foundation",
		Difficulty:   "Advanced",
		Technologies: []string{"Terraform", "Kubernetes", "AWS", "Docker"},
		Features:     []string{"Infrastructure as Code", "Auto-scaling", "Load balancing"},
		DownloadURL:  "/api/projects/cloud-infrastructure/download",
		ImageURL:     "https://images.unsplash.com/photo-1451187580459-43490279c0fa?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/cloud-infrastructure",
	},
	{
		ID:           "database-optimizer",
		Title:        "Database Query Optimizer",
		Description:  "PostgreSQL performance tuning and query optimization toolkit",
		Category:     "Foundation",
		Difficulty:   "Intermediate",
		Technologies: []string{"PostgreSQL", "Python", "SQL", "pgbench"},
		Features:     []string{"Query analysis", "Index optimization", "Performance monitoring"},
		DownloadURL:  "/api/projects/database-optimizer/download",
		ImageURL:     "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/database-optimizer",
	},
	{
		ID:           "api-testing-framework",
		Title:        "API Testing Framework",
		Description:  "Comprehensive REST API testing with pytest and automated documentation",
		Category:     "Foundation",
		Difficulty:   "Intermediate",
		Technologies: []string{"FastAPI", "pytest", "OpenAPI", "Docker"},
		Features:     []string{"Automated testing", "API documentation", "Performance testing"},
		DownloadURL:  "/api/projects/api-testing-framework/download",
		ImageURL:     "https://images.unsplash.com/photo-1571171637578-41bc2dd41cd2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/api-testing-framework",
	},
	{
		ID:           "data-visualization-dashboard",
		Title:        "Data Visualization Dashboard",
		Description:  "Interactive dashboard using Plotly, Dash, and real-time data streaming",
		Category:     "Foundation",
		Difficulty:   "Intermediate",
		Technologies: []string{"Plotly", "Dash", "Pandas", "Redis"},
		Features:     []string{"Real-time updates", "Interactive charts", "Data filtering"},
		DownloadURL:  "/api/projects/data-visualization-dashboard/download",
		ImageURL:     "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/data-visualization-dashboard",
	},
	{
		ID:           "microservices-architecture",
		Title:        "Microservices Architecture",
		Description:  "Complete microservices setup with Docker Compose and service mesh",
		Category:     "Foundation",
		Difficulty:   "Advanced",
		Technologies: []string{"Docker", "Kubernetes", "Istio", "gRPC"},
		Features:     []string{"Service mesh", "Load balancing", "Circuit breakers"},
		DownloadURL:  "/api/projects/microservices-architecture/download",
		ImageURL:     "https://images.unsplash.com/photo-1518432031352-d6fc5c10da5a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/microservices-architecture",
	},
	{
		ID:           "monitoring-alerting-system",
		Title:        "Monitoring & Alerting System",
		Description:  "Comprehensive system monitoring with Prometheus, Grafana, and alerting",
		Category:     "Foundation",
		Difficulty:   "Advanced",
		Technologies: []string{"Prometheus", "Grafana", "AlertManager", "Node Exporter"},
		Features:     []string{"Custom metrics", "Alert rules", "Dashboard templates"},
		DownloadURL:  "/api/projects/monitoring-alerting-system/download",
		ImageURL:     "https://images.unsplash.com/photo-1460925895917-afdab827c52f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/monitoring-alerting-system",
	},
	{
		ID:           "security-automation",
		Title:        "Security Automation Suite",
		Description:  "Automated security scanning and vulnerability assessment pipeline",
		Category:     "Foundation",
		Difficulty:   "Advanced",
		Technologies: []string{"OWASP ZAP", "SonarQube", "Docker", "Python"},
		Features:     []string{"Vulnerability scanning", "Code analysis", "Automated reporting"},
		DownloadURL:  "/api/projects/security-automation/download",
		ImageURL:     "https://images.unsplash.com/photo-1555949963-aa79dcee981c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/security-automation",
	},
	{
		ID:           "fraud-detection",
		Title:        "Fraud Detection System",
		Description:  "Complete ML pipeline for financial fraud detection using ensemble methods and real-time scoring",
		Category:     "Machine Learning",
		Difficulty:   "Intermediate",
		Technologies: []string{"XGBoost", "LightGBM", "FastAPI", "Docker"},
		Features:     []string{"XGBoost + LightGBM ensemble", "Real-time API deployment", "Feature engineering pipeline"},
		DownloadURL:  "/api/projects/fraud-detection/download",
		ImageURL:     "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/fraud-detection",
	},
	{
		ID:           "recommendation-engine",
		Title:        "Recommendation Engine",
		Description:  "Collaborative filtering and content-based recommendation system with A/B testing",
		Category:     "Machine Learning",
		Difficulty:   "Intermediate",
		Technologies: []string{"Scikit-learn", "Surprise", "MLflow", "Redis"},
		Features:     []string{"Collaborative filtering", "Content-based filtering", "A/B testing framework"},
		DownloadURL:  "/api/projects/recommendation-engine/download",
		ImageURL:     "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/recommendation-engine",
	},
	{
		ID:           "time-series-forecasting",
		Title:        "Time Series Forecasting",
		Description:  "Advanced time series forecasting using ARIMA, Prophet, and LSTM models",
		Category:     "Machine Learning",
		Difficulty:   "Advanced",
		Technologies: []string{"Prophet", "ARIMA", "LSTM", "Streamlit"},
		Features:     []string{"Multiple forecasting models", "Seasonal decomposition", "Interactive visualization"},
		DownloadURL:  "/api/projects/time-series-forecasting/download",
		ImageURL:     "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/time-series-forecasting",
	},
	{
		ID:           "customer-churn-prediction",
		Title:        "Customer Churn Prediction",
		Description:  "End-to-end ML pipeline for predicting customer churn with feature importance analysis",
		Category:     "Machine Learning",
		Difficulty:   "Intermediate",
		Technologies: []string{"Random Forest", "SHAP", "Optuna", "FastAPI"},
		Features:     []string{"Feature importance analysis", "Hyperparameter tuning", "Model interpretability"},
		DownloadURL:  "/api/projects/customer-churn-prediction/download",
		ImageURL:     "https://images.unsplash.com/photo-1460925895917-afdab827c52f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/customer-churn-prediction",
	},
	{
		ID:           "anomaly-detection",
		Title:        "Anomaly Detection System",
		Description:  "Real-time anomaly detection using isolation forests and autoencoders",
		Category:     "Machine Learning",
		Difficulty:   "Advanced",
		Technologies: []string{"Isolation Forest", "Autoencoder", "Kafka", "Elasticsearch"},
		Features:     []string{"Real-time processing", "Multiple detection algorithms", "Alert system"},
		DownloadURL:  "/api/projects/anomaly-detection/download",
		ImageURL:     "https://images.unsplash.com/photo-1518186233392-c232efbf2373?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/anomaly-detection",
	},
	{
		ID:           "credit-scoring-model",
		Title:        "Credit Scoring Model",
		Description:  "Advanced credit scoring using gradient boosting with fairness constraints",
		Category:     "Machine Learning",
		Difficulty:   "Advanced",
		Technologies: []string{"XGBoost", "Fairlearn", "LIME", "Docker"},
		Features:     []string{"Fairness-aware ML", "Model explainability", "Bias detection"},
		DownloadURL:  "/api/projects/credit-scoring-model/download",
		ImageURL:     "https://images.unsplash.com/photo-1554224155-6726b3ff858f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/credit-scoring-model",
	},
	{
		ID:           "price-optimization",
		Title:        "Dynamic Price Optimization",
		Description:  "ML-powered dynamic pricing system with competitor analysis and demand forecasting",
		Category:     "Machine Learning",
		Difficulty:   "Advanced",
		Technologies: []string{"Reinforcement Learning", "Prophet", "Scrapy", "PostgreSQL"},
		Features:     []string{"Dynamic pricing algorithms", "Competitor monitoring", "Demand prediction"},
		DownloadURL:  "/api/projects/price-optimization/download",
		ImageURL:     "https://images.unsplash.com/photo-1611224923853-80b023f02d71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/price-optimization",
	},
	{
		ID:           "nlp-sentiment-analyzer",
		Title:        "NLP Sentiment Analyzer",
		Description:  "Multi-language sentiment analysis with BERT and custom domain adaptation",
		Category:     "Machine Learning",
		Difficulty:   "Advanced",
		Technologies: []string{"BERT", "Transformers", "spaCy", "FastAPI"},
		Features:     []string{"Multi-language support", "Domain adaptation", "Real-time API"},
		DownloadURL:  "/api/projects/nlp-sentiment-analyzer/download",
		ImageURL:     "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/nlp-sentiment-analyzer",
	},
	{
		ID:           "inventory-optimization",
		Title:        "Supply Chain Optimization",
		Description:  "ML-based inventory management with demand forecasting and optimization",
		Category:     "Machine Learning",
		Difficulty:   "Advanced",
		Technologies: []string{"OR-Tools", "Prophet", "Pandas", "Dash"},
		Features:     []string{"Demand forecasting", "Inventory optimization", "Supply chain analytics"},
		DownloadURL:  "/api/projects/inventory-optimization/download",
		ImageURL:     "https://images.unsplash.com/photo-1586528116311-ad8dd3c8310d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/inventory-optimization",
	},
	{
		ID:           "medical-diagnosis-ai",
		Title:        "Medical Diagnosis Assistant",
		Description:  "ML system for medical diagnosis support using clinical data and symptoms",
		Category:     "Machine Learning",
		Difficulty:   "Expert",
		Technologies: []string{"Scikit-learn", "Pandas", "SHAP", "Streamlit"},
		Features:     []string{"Symptom analysis", "Risk assessment", "Medical knowledge base"},
		DownloadURL:  "/api/projects/medical-diagnosis-ai/download",
		ImageURL:     "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/medical-diagnosis-ai",
	},
	{
		ID:           "cnn-image-classifier",
		Title:        "CNN Image Classifier",
		Description:  "Advanced image classification using ResNet, DenseNet, and ensemble methods",
		Category:     "Deep Learning",
		Difficulty:   "Intermediate",
		Technologies: []string{"PyTorch", "Torchvision", "Albumentations", "Wandb"},
		Features:     []string{"Transfer learning", "Data augmentation", "Model ensemble"},
		DownloadURL:  "/api/projects/cnn-image-classifier/download",
		ImageURL:     "https://images.unsplash.com/photo-1555255707-c07966088b7b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/cnn-image-classifier",
	},
	{
		ID:           "object-detection-yolo",
		Title:        "YOLO Object Detection",
		Description:  "Real-time object detection using YOLOv8 with custom dataset training",
		Category:     "Deep Learning",
		Difficulty:   "Advanced",
		Technologies: []string{"YOLOv8", "OpenCV", "Ultralytics", "TensorRT"},
		Features:     []string{"Real-time detection", "Custom object training", "Model optimization"},
		DownloadURL:  "/api/projects/object-detection-yolo/download",
		ImageURL:     "https://images.unsplash.com/photo-1517077304055-6e89abbf09b0?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/object-detection-yolo",
	},
	{
		ID:           "rnn-text-generation",
		Title:        "RNN Text Generation",
		Description:  "Advanced text generation using LSTM and GRU with attention mechanisms",
		Category:     "Deep Learning",
		Difficulty:   "Advanced",
		Technologies: []string{"PyTorch", "LSTM", "GRU", "Attention"},
		Features:     []string{"Character-level generation", "Attention mechanism", "Temperature sampling"},
		DownloadURL:  "/api/projects/rnn-text-generation/download",
		ImageURL:     "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/rnn-text-generation",
	},
	{
		ID:           "semantic-segmentation",
		Title:        "Semantic Segmentation",
		Description:  "Pixel-wise image segmentation using U-Net and DeepLab architectures",
		Category:     "Deep Learning",
		Difficulty:   "Advanced",
		Technologies: []string{"U-Net", "DeepLab", "PyTorch", "OpenCV"},
		Features:     []string{"Multi-class segmentation", "IoU optimization", "Data augmentation"},
		DownloadURL:  "/api/projects/semantic-segmentation/download",
		ImageURL:     "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/semantic-segmentation",
	},
	{
		ID:           "face-recognition-system",
		Title:        "Face Recognition System",
		Description:  "End-to-end face recognition with detection, alignment, and identification",
		Category:     "Deep Learning",
		Difficulty:   "Advanced",
		Technologies: []string{"FaceNet", "MTCNN", "PyTorch", "OpenCV"},
		Features:     []string{"Face detection", "Face alignment", "Identity verification"},
		DownloadURL:  "/api/projects/face-recognition-system/download",
		ImageURL:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/face-recognition-system",
	},
	{
		ID:           "neural-style-transfer",
		Title:        "Neural Style Transfer",
		Description:  "Artistic style transfer using VGG networks and perceptual loss functions",
		Category:     "Deep Learning",
		Difficulty:   "Advanced",
		Technologies: []string{"VGG", "PyTorch", "PIL", "Streamlit"},
		Features:     []string{"Style transfer", "Perceptual loss", "Real-time processing"},
		DownloadURL:  "/api/projects/neural-style-transfer/download",
		ImageURL:     "https://images.unsplash.com/photo-1541961017774-22349e4a1262?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/neural-style-transfer",
	},
	{
		ID:           "speech-recognition",
		Title:        "Speech Recognition System",
		Description:  "End-to-end speech recognition using Deep Speech and Wav2Vec2",
		Category:     "Deep Learning",
		Difficulty:   "Advanced",
		Technologies: []string{"Wav2Vec2", "PyTorch", "librosa", "FastAPI"},
		Features:     []string{"Speech-to-text", "Audio preprocessing", "Language modeling"},
		DownloadURL:  "/api/projects/speech-recognition/download",
		ImageURL:     "https://images.unsplash.com/photo-1589903308904-1010c2294adc?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/speech-recognition",
	},
	{
		ID:           "gan-image-synthesis",
		Title:        "GAN Image Synthesis",
		Description:  "High-quality image generation using Progressive GANs and StyleGAN",
		Category:     "Deep Learning",
		Difficulty:   "Expert",
		Technologies: []string{"StyleGAN", "Progressive GAN", "PyTorch", "Wandb"},
		Features:     []string{"High-resolution generation", "Progressive training", "Latent space exploration"},
		DownloadURL:  "/api/projects/gan-image-synthesis/download",
		ImageURL:     "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/gan-image-synthesis",
	},
	{
		ID:           "transformer-machine-translation",
		Title:        "Transformer Translation",
		Description:  "Neural machine translation using Transformer architecture from scratch",
		Category:     "Deep Learning",
		Difficulty:   "Expert",
		Technologies: []string{"Transformers", "PyTorch", "Tokenizers", "BLEU"},
		Features:     []string{"Attention mechanism", "Multi-head attention", "Positional encoding"},
		DownloadURL:  "/api/projects/transformer-machine-translation/download",
		ImageURL:     "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/transformer-machine-translation",
	},
	{
		ID:           "reinforcement-learning-game",
		Title:        "RL Game AI Agent",
		Description:  "Reinforcement learning agent for complex game environments using DQN and PPO",
		Category:     "Deep Learning",
		Difficulty:   "Expert",
		Technologies: []string{"DQN", "PPO", "OpenAI Gym", "Stable Baselines3"},
		Features:     []string{"Deep Q-Learning", "Policy optimization", "Experience replay"},
		DownloadURL:  "/api/projects/reinforcement-learning-game/download",
		ImageURL:     "https://images.unsplash.com/photo-1511512578047-dfb367046420?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/reinforcement-learning-game",
	},
	{
		ID:           "image-generator",
		Title:        "AI Image Generator",
		Description:  "Stable Diffusion pipeline with custom fine-tuning and LoRA adapters for artistic styles",
		Category:     "Generative AI",
		Difficulty:   "Advanced",
		Technologies: []string{"Stable Diffusion", "LoRA", "Gradio", "PyTorch"},
		Features:     []string{"Stable Diffusion XL integration", "Custom LoRA training", "Web interface with Gradio"},
		DownloadURL:  "/api/projects/image-generator/download",
		ImageURL:     "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/image-generator",
	},
	{
		ID:           "text-to-video-generator",
		Title:        "Text-to-Video Generator",
		Description:  "Generate videos from text descriptions using diffusion models and temporal consistency",
		Category:     "Generative AI",
		Difficulty:   "Expert",
		Technologies: []string{"VideoCrafter", "Stable Video", "PyTorch", "CLIP"},
		Features:     []string{"Text-to-video generation", "Temporal consistency", "High-quality output"},
		DownloadURL:  "/api/projects/text-to-video-generator/download",
		ImageURL:     "https://images.unsplash.com/photo-1574717024653-61fd2cf4d44d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/text-to-video-generator",
	},
	{
		ID:           "music-composition-ai",
		Title:        "AI Music Composer",
		Description:  "Generate original music compositions using MuseNet and MusicLM architectures",
		Category:     "Generative AI",
		Difficulty:   "Advanced",
		Technologies: []string{"MuseNet", "MusicLM", "PyTorch", "librosa"},
		Features:     []string{"Multi-instrument composition", "Style conditioning", "MIDI generation"},
		DownloadURL:  "/api/projects/music-composition-ai/download",
		ImageURL:     "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/music-composition-ai",
	},
	{
		ID:           "voice-cloning-system",
		Title:        "Voice Cloning System",
		Description:  "Real-time voice cloning and synthesis using advanced neural vocoders",
		Category:     "Generative AI",
		Difficulty:   "Expert",
		Technologies: []string{"Tortoise TTS", "RVC", "PyTorch", "librosa"},
		Features:     []string{"Voice cloning", "Real-time synthesis", "Multi-speaker support"},
		DownloadURL:  "/api/projects/voice-cloning-system/download",
		ImageURL:     "https://images.unsplash.com/photo-1589903308904-1010c2294adc?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/voice-cloning-system",
	},
	{
		ID:           "3d-model-generator",
		Title:        "3D Model Generator",
		Description:  "Generate 3D models from text descriptions using NeRF and 3D diffusion models",
		Category:     "Generative AI",
		Difficulty:   "Expert",
		Technologies: []string{"NeRF", "3D Diffusion", "PyTorch3D", "Open3D"},
		Features:     []string{"Text-to-3D generation", "NeRF rendering", "3D mesh export"},
		DownloadURL:  "/api/projects/3d-model-generator/download",
		ImageURL:     "https://images.unsplash.com/photo-1633356122102-3fe601e05bd2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/3d-model-generator",
	},
	{
		ID:           "code-generation-ai",
		Title:        "AI Code Generator",
		Description:  "Automated code generation and completion using CodeT5 and fine-tuned models",
		Category:     "Generative AI",
		Difficulty:   "Advanced",
		Technologies: []string{"CodeT5", "Transformers", "Tree-sitter", "FastAPI"},
		Features:     []string{"Code completion", "Multi-language support", "Syntax highlighting"},
		DownloadURL:  "/api/projects/code-generation-ai/download",
		ImageURL:     "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/code-generation-ai",
	},
	{
		ID:           "ai-art-style-mixer",
		Title:        "AI Art Style Mixer",
		Description:  "Blend multiple artistic styles using advanced diffusion models and ControlNet",
		Category:     "Generative AI",
		Difficulty:   "Advanced",
		Technologies: []string{"ControlNet", "Stable Diffusion", "CLIP", "Gradio"},
		Features:     []string{"Style blending", "Pose control", "Edge conditioning"},
		DownloadURL:  "/api/projects/ai-art-style-mixer/download",
		ImageURL:     "https://images.unsplash.com/photo-1541961017774-22349e4a1262?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/ai-art-style-mixer",
	},
	{
		ID:           "personalized-story-generator",
		Title:        "Personalized Story Generator",
		Description:  "Generate personalized stories and narratives using GPT models and character consistency",
		Category:     "Generative AI",
		Difficulty:   "Advanced",
		Technologies: []string{"GPT-3.5", "LangChain", "Streamlit", "OpenAI API"},
		Features:     []string{"Character consistency", "Plot generation", "Interactive storytelling"},
		DownloadURL:  "/api/projects/personalized-story-generator/download",
		ImageURL:     "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/personalized-story-generator",
	},
	{
		ID:           "ai-fashion-designer",
		Title:        "AI Fashion Designer",
		Description:  "Generate fashion designs and clothing patterns using conditional GANs",
		Category:     "Generative AI",
		Difficulty:   "Advanced",
		Technologies: []string{"StyleGAN", "ControlNet", "FashionGAN", "PIL"},
		Features:     []string{"Fashion design generation", "Pattern creation", "Style transfer"},
		DownloadURL:  "/api/projects/ai-fashion-designer/download",
		ImageURL:     "https://images.unsplash.com/photo-1445205170230-053b83016050?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/ai-fashion-designer",
	},
	{
		ID:           "procedural-game-content",
		Title:        "Procedural Game Content",
		Description:  "Generate game levels, textures, and assets using AI and procedural techniques",
		Category:     "Generative AI",
		Difficulty:   "Expert",
		Technologies: []string{"PyGame", "Perlin Noise", "GANs", "Stable Diffusion"},
		Features:     []string{"Level generation", "Texture synthesis", "Asset creation"},
		DownloadURL:  "/api/projects/procedural-game-content/download",
		ImageURL:     "https://images.unsplash.com/photo-1511512578047-dfb367046420?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/procedural-game-content",
	},
	{
		ID:           "custom-chatbot-gpt",
		Title:        "Custom ChatGPT Clone",
		Description:  "Build your own ChatGPT-like interface with RAG capabilities and memory management",
		Category:     "Large Language Models",
		Difficulty:   "Advanced",
		Technologies: []string{"OpenAI API", "LangChain", "Streamlit", "ChromaDB"},
		Features:     []string{"Conversational AI", "RAG implementation", "Chat memory"},
		DownloadURL:  "/api/projects/custom-chatbot-gpt/download",
		ImageURL:     "https://images.unsplash.com/photo-1531746790731-6c087fecd65a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/custom-chatbot-gpt",
	},
	{
		ID:           "llm-fine-tuning-lora",
		Title:        "LLM Fine-tuning with LoRA",
		Description:  "Fine-tune large language models using LoRA and QLoRA for specific domains",
		Category:     "Large Language Models",
		Difficulty:   "Expert",
		Technologies: []string{"LoRA", "QLoRA", "Hugging Face", "PyTorch"},
		Features:     []string{"Parameter-efficient tuning", "Domain adaptation", "Model compression"},
		DownloadURL:  "/api/projects/llm-fine-tuning-lora/download",
		ImageURL:     "https://images.unsplash.com/photo-1677442136019-21780ecad995?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/llm-fine-tuning-lora",
	},
	{
		ID:           "rag-document-qa",
		Title:        "RAG Document Q&A System",
		Description:  "Advanced RAG system for document question-answering with vector databases",
		Category:     "Large Language Models",
		Difficulty:   "Advanced",
		Technologies: []string{"LangChain", "ChromaDB", "FAISS", "OpenAI Embeddings"},
		Features:     []string{"Document ingestion", "Vector search", "Context-aware answers"},
		DownloadURL:  "/api/projects/rag-document-qa/download",
		ImageURL:     "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/rag-document-qa",
	},
	{
		ID:           "llm-agent-framework",
		Title:        "LLM Agent Framework",
		Description:  "Build autonomous AI agents using LangChain and function calling capabilities",
		Category:     "Large Language Models",
		Difficulty:   "Expert",
		Technologies: []string{"LangChain", "OpenAI Functions", "Autogen", "FastAPI"},
		Features:     []string{"Function calling", "Agent workflows", "Tool integration"},
		DownloadURL:  "/api/projects/llm-agent-framework/download",
		ImageURL:     "https://images.unsplash.com/photo-1518186233392-c232efbf2373?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/llm-agent-framework",
	},
	{
		ID:           "code-review-assistant",
		Title:        "AI Code Review Assistant",
		Description:  "Automated code review using fine-tuned CodeT5 and static analysis integration",
		Category:     "Large Language Models",
		Difficulty:   "Advanced",
		Technologies: []string{"CodeT5", "AST", "GitHub API", "FastAPI"},
		Features:     []string{"Code analysis", "Bug detection", "Style suggestions"},
		DownloadURL:  "/api/projects/code-review-assistant/download",
		ImageURL:     "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/code-review-assistant",
	},
	{
		ID:           "multilingual-translator",
		Title:        "Advanced Multilingual Translator",
		Description:  "Real-time translation system supporting 100+ languages with context awareness",
		Category:     "Large Language Models",
		Difficulty:   "Advanced",
		Technologies: []string{"mT5", "MarianMT", "FastAPI", "Streamlit"},
		Features:     []string{"Multi-language support", "Context preservation", "Real-time translation"},
		DownloadURL:  "/api/projects/multilingual-translator/download",
		ImageURL:     "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/multilingual-translator",
	},
	{
		ID:           "content-generation-platform",
		Title:        "AI Content Generation Platform",
		Description:  "Complete content creation platform for blogs, marketing copy, and social media",
		Category:     "Large Language Models",
		Difficulty:   "Advanced",
		Technologies: []string{"GPT-4", "Claude", "Streamlit", "PostgreSQL"},
		Features:     []string{"Multi-format content", "Brand voice training", "SEO optimization"},
		DownloadURL:  "/api/projects/content-generation-platform/download",
		ImageURL:     "https://images.unsplash.com/photo-1455390582262-044cdead277a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/content-generation-platform",
	},
	{
		ID:           "legal-document-analyzer",
		Title:        "Legal Document Analyzer",
		Description:  "AI-powered legal document analysis and contract review system",
		Category:     "Large Language Models",
		Difficulty:   "Expert",
		Technologies: []string{"Legal-BERT", "spaCy", "NER", "Streamlit"},
		Features:     []string{"Contract analysis", "Risk assessment", "Clause extraction"},
		DownloadURL:  "/api/projects/legal-document-analyzer/download",
		ImageURL:     "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/legal-document-analyzer",
	},
	{
		ID:           "personalized-tutor-ai",
		Title:        "Personalized AI Tutor",
		Description:  "Adaptive learning system that personalizes education content based on student progress",
		Category:     "Large Language Models",
		Difficulty:   "Expert",
		Technologies: []string{"GPT-4", "Knowledge Graphs", "Streamlit", "SQLite"},
		Features:     []string{"Adaptive learning", "Progress tracking", "Personalized curriculum"},
		DownloadURL:  "/api/projects/personalized-tutor-ai/download",
		ImageURL:     "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/personalized-tutor-ai",
	},
	{
		ID:           "research-paper-assistant",
		Title:        "Research Paper Assistant",
		Description:  "AI system for research paper analysis, summarization, and citation management",
		Category:     "Large Language Models",
		Difficulty:   "Advanced",
		Technologies: []string{"SciBERT", "arXiv API", "LangChain", "Streamlit"},
		Features:     []string{"Paper summarization", "Citation analysis", "Research insights"},
		DownloadURL:  "/api/projects/research-paper-assistant/download",
		ImageURL:     "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/research-paper-assistant",
	},
	{
		ID:           "multimodal-chatbot",
		Title:        "Multimodal RAG Chatbot",
		Description:  "Advanced chatbot that understands text, images, and documents using CLIP and LangChain",
		Category:     "Multimodal AI",
		Difficulty:   "Expert",
		Technologies: []string{"CLIP", "LangChain", "Streamlit", "ChromaDB"},
		Features:     []string{"CLIP vision-language model", "LangChain RAG pipeline", "Streamlit chat interface"},
		DownloadURL:  "/api/projects/multimodal-chatbot/download",
		ImageURL:     "https://images.unsplash.com/photo-1531746790731-6c087fecd65a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/multimodal-chatbot",
	},
	{
		ID:           "visual-question-answering",
		Title:        "Visual Question Answering",
		Description:  "Answer questions about images using BLIP2 and visual reasoning capabilities",
		Category:     "Multimodal AI",
		Difficulty:   "Advanced",
		Technologies: []string{"BLIP2", "ViLBERT", "PyTorch", "Gradio"},
		Features:     []string{"Image understanding", "Natural language reasoning", "Multi-turn conversations"},
		DownloadURL:  "/api/projects/visual-question-answering/download",
		ImageURL:     "https://images.unsplash.com/photo-1555255707-c07966088b7b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/visual-question-answering",
	},
	{
		ID:           "image-captioning-system",
		Title:        "Advanced Image Captioning",
		Description:  "Generate detailed, contextual captions for images using attention mechanisms",
		Category:     "Multimodal AI",
		Difficulty:   "Advanced",
		Technologies: []string{"BLIP", "Show-Attend-Tell", "PyTorch", "OpenCV"},
		Features:     []string{"Attention visualization", "Context-aware captions", "Multi-language support"},
		DownloadURL:  "/api/projects/image-captioning-system/download",
		ImageURL:     "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/image-captioning-system",
	},
	{
		ID:           "audio-visual-speech",
		Title:        "Audio-Visual Speech Recognition",
		Description:  "Combine audio and visual cues for robust speech recognition in noisy environments",
		Category:     "Multimodal AI",
		Difficulty:   "Expert",
		Technologies: []string{"Wav2Vec2", "Video Processing", "PyTorch", "OpenCV"},
		Features:     []string{"Lip reading", "Audio-visual fusion", "Noise robustness"},
		DownloadURL:  "/api/projects/audio-visual-speech/download",
		ImageURL:     "https://images.unsplash.com/photo-1589903308904-1010c2294adc?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/audio-visual-speech",
	},
	{
		ID:           "text-to-image-search",
		Title:        "Text-to-Image Search Engine",
		Description:  "Search through large image collections using natural language descriptions",
		Category:     "Multimodal AI",
		Difficulty:   "Advanced",
		Technologies: []string{"CLIP", "FAISS", "FastAPI", "Elasticsearch"},
		Features:     []string{"Semantic image search", "Vector indexing", "Real-time search"},
		DownloadURL:  "/api/projects/text-to-image-search/download",
		ImageURL:     "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/text-to-image-search",
	},
	{
		ID:           "multimodal-sentiment",
		Title:        "Multimodal Sentiment Analysis",
		Description:  "Analyze sentiment from text, images, and audio using fusion techniques",
		Category:     "Multimodal AI",
		Difficulty:   "Advanced",
		Technologies: []string{"BERT", "ResNet", "Wav2Vec2", "PyTorch"},
		Features:     []string{"Multi-modal fusion", "Emotion recognition", "Real-time analysis"},
		DownloadURL:  "/api/projects/multimodal-sentiment/download",
		ImageURL:     "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/multimodal-sentiment",
	},
	{
		ID:           "video-understanding-ai",
		Title:        "Video Understanding AI",
		Description:  "Comprehensive video analysis including action recognition and scene understanding",
		Category:     "Multimodal AI",
		Difficulty:   "Expert",
		Technologies: []string{"TimeSformer", "I3D", "PyTorch", "OpenCV"},
		Features:     []string{"Action recognition", "Temporal modeling", "Scene understanding"},
		DownloadURL:  "/api/projects/video-understanding-ai/download",
		ImageURL:     "https://images.unsplash.com/photo-1574717024653-61fd2cf4d44d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/video-understanding-ai",
	},
	{
		ID:           "document-ai-ocr",
		Title:        "Intelligent Document AI",
		Description:  "Extract and understand information from complex documents using OCR and NLP",
		Category:     "Multimodal AI",
		Difficulty:   "Advanced",
		Technologies: []string{"Tesseract", "LayoutLM", "spaCy", "FastAPI"},
		Features:     []string{"OCR processing", "Layout understanding", "Information extraction"},
		DownloadURL:  "/api/projects/document-ai-ocr/download",
		ImageURL:     "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/document-ai-ocr",
	},
	{
		ID:           "ar-object-recognition",
		Title:        "AR Object Recognition",
		Description:  "Real-time object recognition and tracking for augmented reality applications",
		Category:     "Multimodal AI",
		Difficulty:   "Expert",
		Technologies: []string{"ARCore", "YOLOv8", "OpenCV", "Unity"},
		Features:     []string{"Real-time tracking", "3D object detection", "AR visualization"},
		DownloadURL:  "/api/projects/ar-object-recognition/download",
		ImageURL:     "https://images.unsplash.com/photo-1633356122102-3fe601e05bd2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/ar-object-recognition",
	},
	{
		ID:           "multimodal-recommendation",
		Title:        "Multimodal Recommendation System",
		Description:  "Recommendation system that uses text, images, and user behavior for personalization",
		Category:     "Multimodal AI",
		Difficulty:   "Advanced",
		Technologies: []string{"CLIP", "Collaborative Filtering", "PyTorch", "Redis"},
		Features:     []string{"Multi-modal embeddings", "Hybrid recommendations", "Real-time serving"},
		DownloadURL:  "/api/projects/multimodal-recommendation/download",
		ImageURL:     "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/multimodal-recommendation",
	},
	{
		ID:           "quantum-text-classifier",
		Title:        "Quantum Text Classifier",
		Description:  "Hybrid classical-quantum approach for text classification using Qiskit and VQC",
		Category:     "Quantum AI",
		Difficulty:   "Expert",
		Technologies: []string{"Qiskit", "VQC", "Scikit-learn", "Numpy"},
		Features:     []string{"Variational Quantum Circuits", "Qiskit integration", "Hybrid quantum-classical model"},
		DownloadURL:  "/api/projects/quantum-text-classifier/download",
		ImageURL:     "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/quantum-text-classifier",
	},
	{
		ID:           "quantum-neural-network",
		Title:        "Quantum Neural Networks",
		Description:  "Implement quantum neural networks using PennyLane for machine learning tasks",
		Category:     "Quantum AI",
		Difficulty:   "Expert",
		Technologies: []string{"PennyLane", "PyTorch", "Qiskit", "NumPy"},
		Features:     []string{"Quantum layers", "Hybrid optimization", "Quantum gradients"},
		DownloadURL:  "/api/projects/quantum-neural-network/download",
		ImageURL:     "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/quantum-neural-network",
	},
	{
		ID:           "quantum-reinforcement-learning",
		Title:        "Quantum Reinforcement Learning",
		Description:  "Quantum advantage in reinforcement learning using quantum approximate optimization",
		Category:     "Quantum AI",
		Difficulty:   "Expert",
		Technologies: []string{"Cirq", "OpenAI Gym", "TensorFlow Quantum", "Qiskit"},
		Features:     []string{"Quantum policy gradients", "QAOA algorithms", "Quantum advantage"},
		DownloadURL:  "/api/projects/quantum-reinforcement-learning/download",
		ImageURL:     "https://images.unsplash.com/photo-1511512578047-dfb367046420?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/quantum-reinforcement-learning",
	},
	{
		ID:           "quantum-generative-models",
		Title:        "Quantum Generative Models",
		Description:  "Implement quantum GANs and quantum variational autoencoders for data generation",
		Category:     "Quantum AI",
		Difficulty:   "Expert",
		Technologies: []string{"PennyLane", "Qiskit", "PyTorch", "Quantum GANs"},
		Features:     []string{"Quantum GANs", "Quantum VAEs", "Quantum data generation"},
		DownloadURL:  "/api/projects/quantum-generative-models/download",
		ImageURL:     "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/quantum-generative-models",
	},
	{
		ID:           "quantum-optimization",
		Title:        "Quantum Optimization Algorithms",
		Description:  "Solve complex optimization problems using quantum annealing and QAOA",
		Category:     "Quantum AI",
		Difficulty:   "Expert",
		Technologies: []string{"D-Wave", "QAOA", "Qiskit Optimization", "NetworkX"},
		Features:     []string{"Quantum annealing", "QAOA implementation", "Combinatorial optimization"},
		DownloadURL:  "/api/projects/quantum-optimization/download",
		ImageURL:     "https://images.unsplash.com/photo-1518186233392-c232efbf2373?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/quantum-optimization",
	},
	{
		ID:           "quantum-cryptography",
		Title:        "Quantum Cryptography Protocols",
		Description:  "Implement quantum key distribution and quantum-safe cryptographic protocols",
		Category:     "Quantum AI",
		Difficulty:   "Expert",
		Technologies: []string{"Qiskit", "QKD", "Post-quantum crypto", "Cryptography"},
		Features:     []string{"Quantum key distribution", "BB84 protocol", "Quantum-safe algorithms"},
		DownloadURL:  "/api/projects/quantum-cryptography/download",
		ImageURL:     "https://images.unsplash.com/photo-1555949963-aa79dcee981c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/quantum-cryptography",
	},
	{
		ID:           "quantum-chemistry-simulation",
		Title:        "Quantum Chemistry Simulation",
		Description:  "Simulate molecular systems using quantum computing for drug discovery applications",
		Category:     "Quantum AI",
		Difficulty:   "Expert",
		Technologies: []string{"Qiskit Nature", "PySCF", "OpenFermion", "Quantum VQE"},
		Features:     []string{"Molecular simulation", "VQE algorithms", "Drug discovery"},
		DownloadURL:  "/api/projects/quantum-chemistry-simulation/download",
		ImageURL:     "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/quantum-chemistry-simulation",
	},
	{
		ID:           "quantum-language-models",
		Title:        "Quantum Language Models",
		Description:  "Develop quantum-enhanced language models using quantum attention mechanisms",
		Category:     "Quantum AI",
		Difficulty:   "Expert",
		Technologies: []string{"TensorFlow Quantum", "Quantum Attention", "BERT", "Qiskit"},
		Features:     []string{"Quantum attention", "Hybrid language models", "Quantum speedup"},
		DownloadURL:  "/api/projects/quantum-language-models/download",
		ImageURL:     "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/quantum-language-models",
	},
	{
		ID:           "quantum-computer-vision",
		Title:        "Quantum Computer Vision",
		Description:  "Quantum-enhanced image processing and pattern recognition algorithms",
		Category:     "Quantum AI",
		Difficulty:   "Expert",
		Technologies: []string{"Quantum Fourier Transform", "QCNN", "PennyLane", "OpenCV"},
		Features:     []string{"Quantum image processing", "Quantum CNNs", "Pattern recognition"},
		DownloadURL:  "/api/projects/quantum-computer-vision/download",
		ImageURL:     "https://images.unsplash.com/photo-1555255707-c07966088b7b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/quantum-computer-vision",
	},
	{
		ID:           "quantum-agi-framework",
		Title:        "Quantum AGI Framework",
		Description:  "Experimental quantum artificial general intelligence research framework",
		Category:     "Quantum AI",
		Difficulty:   "Expert",
		Technologies: []string{"Multi-quantum systems", "Quantum memory", "AGI architectures", "Qiskit"},
		Features:     []string{"Quantum consciousness models", "Multi-qubit reasoning", "AGI simulation"},
		DownloadURL:  "/api/projects/quantum-agi-framework/download",
		ImageURL:     "https://images.unsplash.com/photo-1620712943543-bcc4688e7485?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		GithubURL:    "https://github.com/aaai/quantum-agi-framework",
	},
}

var seedCodeLabs = []catalog.CodeLab{
	{
		ID:            "linear-regression-pytorch",
		Title:         "Linear Regression with PyTorch",
		Description:   "Build your first neural network using PyTorch for linear regression",
		Difficulty:    "Beginner",
		Category:      "Deep Learning",
		Instructions:  "# Linear Regression with PyTorch\n\n## Objective\nLearn to implement linear regression using PyTorch's neural network modules.\n\n## Instructions\n1. Complete the LinearRegression class implementation\n2. Create a training loop with 1000 epochs  \n3. Print the loss every 100 epochs\n4. Plot the final results showing the fitted line\n\n## Requirements\n- Use nn.Linear for the layer\n- Use MSELoss as criterion\n- Use SGD optimizer with lr=0.01",
		StarterCode:   "import torch\nimport torch.nn as nn\nimport torch.optim as optim\nimport matplotlib.pyplot as plt\n\n# TODO: Create a simple linear regression model\nclass LinearRegression(nn.Module):\n    def __init__(self):\n        super().__init__()\n        # Your code here\n        self.linear = nn.Linear(1, 1)\n    \n    def forward(self, x):\n        # Implement forward pass\n        return self.linear(x)\n\n# Generate sample data\nx = torch.randn(100, 1)\ny = 2 * x + 1 + torch.randn(100, 1) * 0.1\n\n# TODO: Create model, loss function, and optimizer\nmodel = LinearRegression()\ncriterion = nn.MSELoss()\noptimizer = torch.optim.SGD(model.parameters(), lr=0.01)\n\n# TODO: Implement training loop\n",
		Solution:      "import torch\nimport torch.nn as nn\nimport torch.optim as optim\nimport matplotlib.pyplot as plt\n\nclass LinearRegression(nn.Module):\n    def __init__(self):\n        super().__init__()\n        self.linear = nn.Linear(1, 1)\n    \n    def forward(self, x):\n        return self.linear(x)\n\n# Generate sample data\nx = torch.randn(100, 1)\ny = 2 * x + 1 + torch.randn(100, 1) * 0.1\n\n# Create model, loss function, and optimizer\nmodel = LinearRegression()\ncriterion = nn.MSELoss()\noptimizer = torch.optim.SGD(model.parameters(), lr=0.01)\n\n# Training loop\nfor epoch in range(1000):\n    optimizer.zero_grad()\n    outputs = model(x)\n    loss = criterion(outputs, y)\n    loss.backward()\n    optimizer.step()\n    \n    if (epoch + 1) % 100 == 0:\n        print(f'Epoch [{epoch+1}/1000], Loss: {loss.item():.4f}')\n\n# Plot results\nwith torch.no_grad():\n    predicted = model(x).detach()\n    plt.scatter(x.numpy(), y.numpy(), alpha=0.5)\n    plt.plot(x.numpy(), predicted.numpy(), 'r-', linewidth=2)\n    plt.show()\n",
		Hints:         []string{"Remember to call optimizer.zero_grad() before each backward pass", "Use loss.backward() to compute gradients", "Call optimizer.step() to update parameters"},
		EstimatedTime: 30,
	},
}

var seedDocumentation = []catalog.Documentation{
	{
		ID:       "getting-started",
		Title:    "Getting Started with AAAI Curriculum",
		Content:  "# Getting Started with AAAI Curriculum\n\nWelcome to the Anytime Anywhere AI comprehensive curriculum. This guide will help you set up your development environment and start your AI learning journey.\n\n## Prerequisites\n\n- Python 3.8 or higher\n- Basic understanding of programming concepts\n- Git for version control\n- Docker for containerization (optional)\n\n## Environment Setup\n\nFirst, let's set up your Python environment with the required packages:\n\n```bash\n# Create a virtual environment\npython -m venv aaai-env\n\n# Activate the environment\nsource aaai-env/bin/activate  # On Linux/Mac\naaai-env\\Scripts\\activate     # On Windows\n\n# Install core packages\npip install torch torchvision tensorflow\npip install transformers datasets\npip install langchain chromadb\npip install scikit-learn pandas numpy\npip install jupyter matplotlib seaborn\n```\n\n## Your First AI Model\n\nLet's start with a simple linear regression model using PyTorch:\n\n```python\nimport torch\nimport torch.nn as nn\nimport torch.optim as optim\n\nclass SimpleModel(nn.Module):\n    def __init__(self):\n        super(SimpleModel, self).__init__()\n        self.linear = nn.Linear(1, 1)\n    \n    def forward(self, x):\n        return self.linear(x)\n\n# Create model and optimizer\nmodel = SimpleModel()\noptimizer = optim.SGD(model.parameters(), lr=0.01)\ncriterion = nn.MSELoss()\n```\n\n## Next Steps\n\n1. **Foundation Course**: Master the fundamentals of Python, data handling, and MLOps\n2. **Project Templates**: Explore ready-to-use AI project implementations\n3. **Code Labs**: Practice with interactive coding exercises\n4. **Community**: Join our learning community for support and collaboration\n        ",
		Category: "getting-started",
		Tags:     []string{"setup", "python", "pytorch", "beginner"},
	},
}
